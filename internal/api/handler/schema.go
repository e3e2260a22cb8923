package handler

// --- Auth ---

type registerRequest struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	Phone           string `json:"celular,omitempty"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Users ---

type updateProfileRequest struct {
	Name  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"celular,omitempty"`
}

type updateRoleRequest struct {
	Role string `json:"cargo" validate:"required"`
}

// --- Products ---

type createProductRequest struct {
	Name     string   `json:"nome" validate:"required"`
	Category string   `json:"categoria" validate:"required"`
	Price    *float64 `json:"valor" validate:"required,gte=0"`
	Stock    *int     `json:"estoque" validate:"required,gte=0"`
}

type updateProductRequest struct {
	Name     *string  `json:"nome,omitempty"`
	Category *string  `json:"categoria,omitempty"`
	Price    *float64 `json:"valor,omitempty" validate:"omitempty,gte=0"`
	Stock    *int     `json:"estoque,omitempty" validate:"omitempty,gte=0"`
}

// --- Shared ---

type messageResponse struct {
	Message string `json:"message"`
}
