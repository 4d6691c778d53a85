package users

type ListUsersRequest struct {
	Search string
	Page   int
	Limit  int
}

type UpdateRoleRequest struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	NewRole string `json:"newRole" validate:"required,oneof=admin user"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL   *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

type listedUser struct {
	ID               int64   `json:"id"`
	Email            string  `json:"email"`
	DisplayName      string  `json:"displayName"`
	Role             string  `json:"role"`
	RegistrationDate *string `json:"registrationDate"`
}

// The admin user table reports totalUsers rather than totalCount; kept as the
// clients expect it.
type listPagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalUsers      int  `json:"totalUsers"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type listResponse struct {
	Users      []listedUser   `json:"users"`
	Pagination listPagination `json:"pagination"`
}

type roleUpdateResponse struct {
	Success bool        `json:"success"`
	User    updatedUser `json:"user"`
	Message string      `json:"message"`
}

type updatedUser struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	UpdatedAt   string `json:"updatedAt"`
}

type profileResponse struct {
	User profileUser `json:"user"`
}

type profileUser struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl"`
	Role        string  `json:"role"`
}
