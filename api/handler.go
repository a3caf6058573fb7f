// Package api exposes the portal over HTTP. Handlers stay thin:
// payload adaptation, delegation to the flow/session/orcid/course
// components, and mapping of the error taxonomy onto status codes.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kauportal/portal/course"
	"github.com/kauportal/portal/domain"
	"github.com/kauportal/portal/flow"
	"github.com/kauportal/portal/identity"
	"github.com/kauportal/portal/orcid"
	"github.com/kauportal/portal/persistence"
	"github.com/kauportal/portal/rbac"
	"github.com/kauportal/portal/session"
)

type Handler struct {
	regManager     *flow.RegistrationManager
	loginManager   *flow.LoginManager
	sessionManager *session.Manager
	identities     domain.IdentityStorage
	registry       *orcid.Client
	workStore      orcid.WorkStore
	courses        *course.Service
}

func NewHandler(
	reg *flow.RegistrationManager,
	login *flow.LoginManager,
	sessions *session.Manager,
	identities domain.IdentityStorage,
	registry *orcid.Client,
	workStore orcid.WorkStore,
	courses *course.Service,
) *Handler {
	return &Handler{
		regManager:     reg,
		loginManager:   login,
		sessionManager: sessions,
		identities:     identities,
		registry:       registry,
		workStore:      workStore,
		courses:        courses,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/registration", h.HandleRegistration)
	g.POST("/login", h.HandleLogin)

	g.GET("/orcid/researches", h.HandleWorks)
	g.GET("/orcid/researches/:put_code", h.HandleWork)

	protected := g.Group("", h.AuthMiddleware)
	protected.GET("/whoami", h.HandleWhoAmI)
	protected.GET("/courses", h.HandleListCourses)
	protected.GET("/courses/:code", h.HandleGetCourse)
	protected.POST("/courses", h.HandleCreateCourse, rbac.RequireRole(identity.RoleFaculty))
	protected.POST("/orcid/sync", h.HandleSyncWorks, rbac.RequireStaff())
}

// HandleRegistration adapts the raw payload (password_1 renaming,
// confirmation synthesis) and runs the identity-creation contract.
func (h *Handler) HandleRegistration(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return h.Error(c, http.StatusBadRequest, "Invalid request body", err)
	}

	payload := AdaptRegistration(raw)

	password, _ := payload["password1"].(string)
	confirm, _ := payload["password2"].(string)
	if password == "" {
		return h.Error(c, http.StatusBadRequest, "password1 required", nil)
	}
	if password != confirm {
		return h.Error(c, http.StatusBadRequest, "password confirmation mismatch", nil)
	}

	role := identity.Role(stringField(payload, "role"))
	if role != "" && !role.Valid() {
		return h.Error(c, http.StatusBadRequest, "invalid role", nil)
	}

	kauID, err := kauIDField(payload)
	if err != nil {
		return h.Error(c, http.StatusBadRequest, "invalid kau_id", err)
	}

	ident, err := h.regManager.Register(c.Request().Context(), flow.RegistrationInput{
		Email:    stringField(payload, "email"),
		Password: password,
		Username: stringField(payload, "username"),
		KauID:    kauID,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRequired), errors.Is(err, domain.ErrKauIDRequired):
			return h.Error(c, http.StatusBadRequest, "Invalid registration", err)
		case persistence.IsUniqueViolation(err):
			return h.Error(c, http.StatusConflict, "Account already exists", err)
		default:
			return h.Error(c, http.StatusInternalServerError, "Internal server error", err)
		}
	}

	return c.JSON(http.StatusOK, ident)
}

func (h *Handler) HandleLogin(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return h.Error(c, http.StatusBadRequest, "Invalid request body", err)
	}

	ident, err := h.loginManager.Authenticate(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		return h.Error(c, http.StatusUnauthorized, "Unauthorized", err)
	}

	s, token, err := h.sessionManager.Issue(c.Request().Context(), ident.ID)
	if err != nil {
		return h.Error(c, http.StatusInternalServerError, "Internal server error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"identity": ident,
		"session":  s,
		"token":    token,
	})
}

// AuthMiddleware resolves the bearer token to an identity and stores
// it where the rbac gate expects it.
func (h *Handler) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		if token == "" {
			return h.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
		}

		s, err := h.sessionManager.Validate(c.Request().Context(), token)
		if err != nil {
			return h.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		}

		ident, err := h.identities.GetIdentity(c.Request().Context(), s.IdentityID)
		if err != nil {
			return h.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		}

		c.Set(rbac.ContextKey, ident)
		c.Set("session", s)
		return next(c)
	}
}

func (h *Handler) HandleWhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":   "authenticated",
		"identity": rbac.IdentityFrom(c),
	})
}

func (h *Handler) HandleWorks(c echo.Context) error {
	res, err := h.registry.FetchWorks(c.Request().Context())
	if err != nil {
		return h.Error(c, http.StatusBadGateway, "Registry unreachable", err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) HandleWork(c echo.Context) error {
	res, err := h.registry.FetchWork(c.Request().Context(), c.Param("put_code"))
	if err != nil {
		return h.Error(c, http.StatusBadGateway, "Registry unreachable", err)
	}
	if !res.Success {
		return c.JSON(http.StatusOK, echo.Map{"error": res.Error, "status": res.Status})
	}
	return c.JSONBlob(http.StatusOK, res.Record)
}

func (h *Handler) HandleSyncWorks(c echo.Context) error {
	n, err := orcid.SyncWorks(c.Request().Context(), h.registry, h.workStore)
	if err != nil {
		return h.Error(c, http.StatusBadGateway, "Sync failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"synced": n})
}

func (h *Handler) HandleListCourses(c echo.Context) error {
	courses, err := h.courses.List(c.Request().Context())
	if err != nil {
		return h.Error(c, http.StatusInternalServerError, "Internal server error", err)
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *Handler) HandleGetCourse(c echo.Context) error {
	found, err := h.courses.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.Error(c, http.StatusNotFound, "Course not found", err)
	}
	return c.JSON(http.StatusOK, found)
}

func (h *Handler) HandleCreateCourse(c echo.Context) error {
	var body struct {
		Code    string `json:"code"`
		Title   string `json:"title"`
		Credits int    `json:"credits"`
	}
	if err := c.Bind(&body); err != nil {
		return h.Error(c, http.StatusBadRequest, "Invalid request body", err)
	}

	var facultyID *uuid.UUID
	if ident := rbac.IdentityFrom(c); ident != nil {
		facultyID = &ident.ID
	}

	created, err := h.courses.Create(c.Request().Context(), body.Code, body.Title, body.Credits, facultyID)
	if err != nil {
		switch {
		case errors.Is(err, course.ErrCodeRequired), errors.Is(err, course.ErrTitleRequired):
			return h.Error(c, http.StatusBadRequest, "Invalid course", err)
		case persistence.IsUniqueViolation(err):
			return h.Error(c, http.StatusConflict, "Course already exists", err)
		default:
			return h.Error(c, http.StatusInternalServerError, "Internal server error", err)
		}
	}

	return c.JSON(http.StatusCreated, created)
}

// Error writes the shared rejection shape.
func (h *Handler) Error(c echo.Context, code int, message string, err error) error {
	resp := echo.Map{
		"status": message,
		"code":   code,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	return c.JSON(code, resp)
}

func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

// kauIDField accepts the institutional id as a JSON number or a
// numeric string, absent meaning nil.
func kauIDField(payload map[string]any) (*int64, error) {
	v, ok := payload["kau_id"]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		id := int64(n)
		return &id, nil
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return nil, err
		}
		return &id, nil
	default:
		return nil, fmt.Errorf("unsupported kau_id type %T", v)
	}
}
