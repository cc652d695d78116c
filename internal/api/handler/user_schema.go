package handler

import "time"

// transactionErrorResponse is returned when an operation is refused by the
// service layer. Shape errors use the central {"error": ...} envelope instead.
type transactionErrorResponse struct {
	CodeTransaction string `json:"code_transaction" example:"UNABLE_TO_CREATE_USER"`
	Message         string `json:"message"          example:"The username 'bob_esponja' is already in use."`
	RequestID       string `json:"request_id,omitempty"`
}

// errorResponse documents the framework-level error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type reactionsRequest struct {
	PlusOne  int `json:"plus_one"  validate:"gte=0"`
	MinusOne int `json:"minus_one" validate:"gte=0"`
	Laugh    int `json:"laugh"     validate:"gte=0"`
	Confused int `json:"confused"  validate:"gte=0"`
	Heart    int `json:"heart"     validate:"gte=0"`
	Hooray   int `json:"hooray"    validate:"gte=0"`
	Rocket   int `json:"rocket"    validate:"gte=0"`
	Eyes     int `json:"eyes"      validate:"gte=0"`
}

type createUserRequest struct {
	Username       string            `json:"username"         validate:"required,max=39" example:"bob_esponja"`
	Role           *string           `json:"role"             validate:"omitnil,oneof=admin internal external" example:"external"`
	Reactions      *reactionsRequest `json:"reactions"`
	LastReactionAt *time.Time        `json:"last_reaction_at" example:"2024-06-01T10:30:00Z"`
}

// updateUserRequest additionally requires one of Role, Reactions or
// LastReactionAt; see validateUpdateUser.
type updateUserRequest struct {
	Username       string            `json:"username"         validate:"required,max=39" example:"bob_esponja"`
	Role           *string           `json:"role"             validate:"omitnil,oneof=admin internal external" example:"admin"`
	Reactions      *reactionsRequest `json:"reactions"`
	LastReactionAt *time.Time        `json:"last_reaction_at" example:"2024-06-01T10:30:00Z"`
}

type deleteUserRequest struct {
	Username string `json:"username" form:"username" query:"username" validate:"required,max=39"`
}

// --- Response types ---

type userResponse struct {
	CodeTransaction string `json:"code_transaction" example:"OK"`
	UserID          string `json:"user_id"          example:"7f8c1a4e-5b2d-4c1e-9a3f-2d6b8e0c1f4a"`
}

type deleteUserResponse struct {
	CodeTransaction string `json:"code_transaction" example:"OK"`
	Message         string `json:"message"          example:"OK"`
}

type reactionsResponse struct {
	PlusOne  int `json:"plus_one"`
	MinusOne int `json:"minus_one"`
	Laugh    int `json:"laugh"`
	Confused int `json:"confused"`
	Heart    int `json:"heart"`
	Hooray   int `json:"hooray"`
	Rocket   int `json:"rocket"`
	Eyes     int `json:"eyes"`
}

type userViewResponse struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"`
	Role           string            `json:"role"`
	Reactions      reactionsResponse `json:"reactions"`
	LastReactionAt *string           `json:"last_reaction_at"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type listUsersResponse struct {
	CodeTransaction string             `json:"code_transaction" example:"OK"`
	Data            []userViewResponse `json:"data"`
}
