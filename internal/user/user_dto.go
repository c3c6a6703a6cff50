package user

type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=50"`
	Email    string `json:"email" form:"email" binding:"required,email,max=100"`
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,max=100"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin staff"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

func (r *CreateUserRequest) Normalize() {
	if r.Role == "" {
		r.Role = RoleStaff
	}
}

type UpdateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=50"`
	Email    string `json:"email" form:"email" binding:"required,email,max=100"`
	FullName string `json:"full_name" form:"full_name" binding:"omitempty,max=100"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=admin staff"`
	// Password is optional on update; when present it replaces the hash.
	Password string `json:"password" form:"password" binding:"omitempty,min=8"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
