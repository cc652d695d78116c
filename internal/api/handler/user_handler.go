package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foundever/reactions/internal/core/domain"
	"github.com/foundever/reactions/internal/core/ports"
)

const (
	codeOK                 = "OK"
	codeUnableToCreateUser = "UNABLE_TO_CREATE_USER"
	codeUnableToUpdateUser = "UNABLE_TO_UPDATE_USER"
	codeUnableToDeleteUser = "UNABLE_TO_DELETE_USER"

	// msgUserDoesNotExist is returned to clients for unknown usernames. It
	// does not echo the username.
	msgUserDoesNotExist = "A user with the specified details does not exist."

	maxFormBytes = 1 << 20
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a user
// @Description  Creates a user identified by a unique username. Role defaults to external and reactions to zero.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest         true  "User to create"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  transactionErrorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		var taken *domain.UsernameAlreadyExistsError
		if errors.As(err, &taken) {
			return transactionError(c, codeUnableToCreateUser, taken.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{CodeTransaction: codeOK, UserID: user.ID})
}

// Update handles PUT /api/v1/users.
//
// @Summary      Update a user
// @Description  Replaces the supplied fields of the user. At least one of role, reactions or last_reaction_at is required; reactions are replaced as a whole.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest         true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  transactionErrorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), toUpdateUserInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrUserDoesNotExist) {
			return transactionError(c, codeUnableToUpdateUser, msgUserDoesNotExist)
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{CodeTransaction: codeOK, UserID: user.ID})
}

// Delete handles DELETE /api/v1/users.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username of the user to delete"
// @Success      200       {object}  deleteUserResponse
// @Failure      400       {object}  transactionErrorResponse
// @Failure      422       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/v1/users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	req, err := bindDeleteUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), req.Username); err != nil {
		if errors.Is(err, domain.ErrUserDoesNotExist) {
			return transactionError(c, codeUnableToDeleteUser, msgUserDoesNotExist)
		}
		return err
	}

	return c.JSON(http.StatusOK, deleteUserResponse{CodeTransaction: codeOK, Message: "OK"})
}

// List handles GET /api/v1/users.
//
// @Summary      List users
// @Description  Returns every user, or only the user whose username matches exactly.
// @Tags         users
// @Produce      json
// @Param        username  query     string  false  "Exact username filter"  example(bob_esponja)
// @Success      200       {object}  listUsersResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.service.ListUsers(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		CodeTransaction: codeOK,
		Data:            toUserViewResponses(views),
	})
}

// bindDeleteUser reads username from a form-encoded body, falling back to
// the query string. net/http does not parse url-encoded bodies on DELETE,
// so that case is decoded here; JSON and multipart go through c.Bind.
func bindDeleteUser(c echo.Context) (deleteUserRequest, error) {
	var req deleteUserRequest

	r := c.Request()
	if !strings.HasPrefix(r.Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
		err := c.Bind(&req)
		return req, err
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes))
	if err != nil {
		return req, err
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return req, err
	}

	req.Username = values.Get("username")
	if req.Username == "" {
		req.Username = c.QueryParam("username")
	}
	return req, nil
}

func transactionError(c echo.Context, code, message string) error {
	return c.JSON(http.StatusBadRequest, transactionErrorResponse{
		CodeTransaction: code,
		Message:         message,
		RequestID:       c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
