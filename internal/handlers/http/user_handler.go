package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
	"github.com/rafabene/usermanager-backend/internal/handlers/dto"
	"github.com/rafabene/usermanager-backend/internal/services"
)

// UserEventRecorder recebe eventos do ciclo de vida de usuários (métricas)
type UserEventRecorder interface {
	UserEvent(event string)
}

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	events      UserEventRecorder
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, events UserEventRecorder) *UserHandler {
	return &UserHandler{
		userService: userService,
		events:      events,
	}
}

// CreateUser cria um novo usuário com seu perfil
// @Summary      Cria usuário e perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateUserRequest  true  "Usuário e perfil"
// @Success      201      {object}  dto.CreateUserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserInput
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondError(c, err)
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	h.record("created")
	c.JSON(http.StatusCreated, dto.ToCreateUserResponse(created))
}

// GetUser busca um usuário por ID
// @Summary      Busca usuário
// @Tags         users
// @Produce      json
// @Param        userId          path      int   true   "ID do usuário"
// @Param        includeDeleted  query     bool  false  "Inclui usuários com soft delete"
// @Success      200             {object}  dto.UserResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Failure      404             {object}  dto.ErrorResponse
// @Router       /api/users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		dto.RespondError(c, err)
		return
	}
	includeDeleted, err := parseBoolQuery(c, "includeDeleted")
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id, includeDeleted)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários
// @Summary      Lista usuários
// @Tags         users
// @Produce      json
// @Param        role            query     string  false  "admin, manager ou user"
// @Param        status          query     string  false  "active, inactive ou suspended"
// @Param        page            query     int     false  "Página (começa em 1)"
// @Param        pageSize        query     int     false  "Itens por página (max 100)"
// @Param        includeDeleted  query     bool    false  "Inclui usuários com soft delete"
// @Success      200             {array}   dto.UserResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser atualiza campos do usuário (username é imutável)
// @Summary      Atualiza usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId   path      int                    true  "ID do usuário"
// @Param        request  body      dto.UpdateUserRequest  true  "Campos a atualizar"
// @Success      200      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	var req services.UpdateUserInput
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// SoftDeleteUser desativa usuário e perfil
// @Summary      Soft delete
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "ID do usuário"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/soft [delete]
func (h *UserHandler) SoftDeleteUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	if err := h.userService.SoftDeleteUser(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	h.record("soft_deleted")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.user_soft_deleted")})
}

// ForceDeleteUser remove usuário e perfil permanentemente
// @Summary      Hard delete
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "ID do usuário"
// @Success      200     {object}  dto.MessageResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/force [delete]
func (h *UserHandler) ForceDeleteUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	if err := h.userService.ForceDeleteUser(c.Request.Context(), id); err != nil {
		dto.RespondError(c, err)
		return
	}

	h.record("deleted")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.user_deleted")})
}

// UsernameExists verifica se um username já está em uso
// @Summary      Verifica username
// @Tags         users
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Success      200       {object}  dto.ExistsResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/users/username-exists [get]
func (h *UserHandler) UsernameExists(c *gin.Context) {
	exists, err := h.userService.UsernameExists(c.Request.Context(), c.Query("username"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}

// EmailExists verifica se um email já está em uso
// @Summary      Verifica email
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Email"
// @Success      200    {object}  dto.ExistsResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/users/email-exists [get]
func (h *UserHandler) EmailExists(c *gin.Context) {
	exists, err := h.userService.EmailExists(c.Request.Context(), c.Query("email"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}

func (h *UserHandler) record(event string) {
	if h.events != nil {
		h.events.UserEvent(event)
	}
}

func parseUserID(c *gin.Context) (uint, error) {
	raw := c.Param("userId")
	// ids são BIGINT com sinal no banco
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, errors.NewValidation(errors.Violation{
			Field:   "userId",
			Type:    errors.ViolationFormat,
			Message: "userId must be a positive integer",
			Tag:     "number",
		})
	}
	return uint(id), nil
}

func parseBoolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.NewValidation(errors.Violation{
			Field:   name,
			Type:    errors.ViolationFormat,
			Message: name + " must be true or false",
			Tag:     "boolean",
		})
	}
	return value, nil
}

// parseFilters lê os filtros da listagem, reportando todos os parâmetros inválidos
func parseFilters(c *gin.Context) (repositories.UserFilters, error) {
	var (
		filters    repositories.UserFilters
		violations []errors.Violation
	)

	if raw := c.Query("role"); raw != "" {
		role := entities.Role(raw)
		if role.IsValid() {
			filters.Role = &role
		} else {
			violations = append(violations, enumViolation("role", "admin manager user"))
		}
	}

	if raw := c.Query("status"); raw != "" {
		status := entities.Status(raw)
		if status.IsValid() {
			filters.Status = &status
		} else {
			violations = append(violations, enumViolation("status", "active inactive suspended"))
		}
	}

	pagination := []struct {
		name string
		dst  *int
		max  int
	}{
		{"page", &filters.Page, repositories.MaxPage},
		{"pageSize", &filters.PageSize, 0}, // acima de MaxPageSize é limitado, não rejeitado
	}
	for _, p := range pagination {
		name := p.name
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || (p.max > 0 && n > p.max) {
			message := name + " must be a positive integer"
			if p.max > 0 {
				message = fmt.Sprintf("%s must be an integer between 1 and %d", name, p.max)
			}
			violations = append(violations, errors.Violation{
				Field:   name,
				Type:    errors.ViolationFormat,
				Message: message,
				Tag:     "number",
			})
			continue
		}
		*p.dst = n
	}

	includeDeleted, err := parseBoolQuery(c, "includeDeleted")
	if err != nil {
		violations = append(violations, errors.As(err).Violations...)
	}
	filters.IncludeDeleted = includeDeleted

	if len(violations) > 0 {
		return filters, errors.NewValidation(violations...)
	}
	return filters, nil
}

func enumViolation(field, allowed string) errors.Violation {
	return errors.Violation{
		Field:   field,
		Type:    errors.ViolationEnum,
		Message: field + " must be one of: " + allowed,
		Tag:     "oneof",
		Param:   allowed,
	}
}
