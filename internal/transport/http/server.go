package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"galleria/internal/domain/models"
	"galleria/internal/lib/logger/sl"
	"galleria/internal/lib/youtube"
	session_service "galleria/internal/services/session_service"
	"galleria/internal/storage"
	"galleria/internal/transport/http/dto"
	"galleria/internal/transport/http/dto/request"
	"galleria/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	_ "galleria/docs"
)

type SliderService interface {
	CreateSlider(ctx context.Context, req dto.CreateSliderRequest) (models.Slider, error)
	GetSlider(ctx context.Context, sliderID uuid.UUID) (models.Slider, error)
	DeleteSlider(ctx context.Context, sliderID uuid.UUID) error
	AddItem(ctx context.Context, sliderID uuid.UUID, req dto.AddSliderItemRequest) (models.SliderItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateSliderItemRequest) error
	ToggleItemActive(ctx context.Context, itemID uuid.UUID) (bool, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Reorder(ctx context.Context, sliderID uuid.UUID, req dto.ReorderRequest) error
}

type ContentService interface {
	Sliders(ctx context.Context, section string) ([]models.SliderWithItems, error)
	Content(ctx context.Context, sectionKey, locale string) (models.SectionContent, error)
	Configs(ctx context.Context) ([]models.SiteConfig, error)
	Invalidate(tag string) int
}

type ConfigService interface {
	UpsertContent(ctx context.Context, req dto.UpsertContentRequest) error
	UpsertConfig(ctx context.Context, req dto.UpsertConfigRequest) error
	ListConfigs(ctx context.Context) ([]models.SiteConfig, error)
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (models.AdminSession, error)
	Validate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
	LogoutAll(ctx context.Context) error
}

type MediaService interface {
	Upload(ctx context.Context, files []*multipart.FileHeader, subPath string) ([]models.UploadedFile, error)
}

type Routers struct {
	log            *slog.Logger
	SliderService  SliderService
	ContentService ContentService
	ConfigService  ConfigService
	SessionService SessionService
	MediaService   MediaService
}

func NewRouter(
	log *slog.Logger,
	sliderService SliderService,
	contentService ContentService,
	configService ConfigService,
	sessionService SessionService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:            log,
		SliderService:  sliderService,
		ContentService: contentService,
		ConfigService:  configService,
		SessionService: sessionService,
		MediaService:   mediaService,
	}
}

// fail maps a service error onto the wire taxonomy. Unclassified
// errors come back as store_error with no internals leaked.
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	var ve *models.ValidationError

	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, strings.Join(ve.Errors, "; ")))
	case errors.Is(err, storage.ErrReorderMismatch):
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, storage.ErrReorderMismatch.Error()))
	case errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	case errors.Is(err, storage.ErrSlugExists):
		return c.JSON(http.StatusConflict,
			response.Err(response.CodeValidation, storage.ErrSlugExists.Error()))
	case errors.Is(err, storage.ErrSliderNotFound),
		errors.Is(err, storage.ErrItemNotFound),
		errors.Is(err, storage.ErrContentNotFound),
		errors.Is(err, storage.ErrConfigNotFound):
		return c.JSON(http.StatusNotFound,
			response.Err(response.CodeNotFound, err.Error()))
	case errors.Is(err, session_service.ErrInvalidCredentials),
		errors.Is(err, session_service.ErrInvalidSession),
		errors.Is(err, session_service.ErrSessionExpired):
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	default:
		log.Error("request failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
}

// --- public read API ---

// GetSliders godoc
// @Summary List active sliders for a page section
// @Description Returns the section's sliders with items in render order. Served from cache or the bundled static dataset when the store is empty.
// @Tags content
// @Produce json
// @Param section path string true "Page section (hero, stories, artists)"
// @Success 200 {object} response.Response{data=[]dto.SliderResponse}
// @Failure 500 {object} response.Response
// @Router /api/v1/sections/{section}/sliders [get]
func (r *Routers) GetSliders(c echo.Context) error {
	const op = "http.routers.GetSliders"

	log := r.log.With(slog.String("op", op))

	section := c.Param("section")

	sliders, err := r.ContentService.Sliders(c.Request().Context(), section)
	if err != nil {
		return r.fail(c, log, err)
	}

	out := make([]dto.SliderResponse, 0, len(sliders))
	for _, s := range sliders {
		out = append(out, toSliderResponse(s))
	}

	return c.JSON(http.StatusOK, response.Ok(out))
}

// GetContent godoc
// @Summary Get one content block
// @Description Returns the block for the requested locale, falling back to the default locale and then to bundled defaults.
// @Tags content
// @Produce json
// @Param section_key path string true "Content block key"
// @Param locale query string false "Locale code (e.g. en, es)"
// @Success 200 {object} response.Response{data=models.SectionContent}
// @Failure 404 {object} response.Response
// @Router /api/v1/content/{section_key} [get]
func (r *Routers) GetContent(c echo.Context) error {
	const op = "http.routers.GetContent"

	log := r.log.With(slog.String("op", op))

	content, err := r.ContentService.Content(
		c.Request().Context(),
		c.Param("section_key"),
		c.QueryParam("locale"),
	)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Ok(content))
}

// GetConfig godoc
// @Summary List site settings
// @Tags content
// @Produce json
// @Success 200 {object} response.Response{data=[]models.SiteConfig}
// @Router /api/v1/config [get]
func (r *Routers) GetConfig(c echo.Context) error {
	const op = "http.routers.GetConfig"

	log := r.log.With(slog.String("op", op))

	configs, err := r.ContentService.Configs(c.Request().Context())
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Ok(configs))
}

// --- admin session ---

// Login godoc
// @Summary Admin login
// @Description Exchanges admin credentials for a session token valid for the configured window.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Admin credentials"
// @Success 200 {object} response.Response{data=models.AdminSession}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(slog.String("op", op))

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login payload", slog.String("email", req.Email))
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	adminSession, err := r.SessionService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("login rejected", slog.String("email", req.Email))
		return r.fail(c, log, err)
	}

	if sess, err := session.Get("admin", c); err == nil {
		sess.Options.HttpOnly = true
		sess.Options.MaxAge = int(adminSession.ExpiresAt.Sub(adminSession.IssuedAt).Seconds())
		sess.Values["admin_token"] = adminSession.Token
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			log.Warn("could not persist session cookie", sl.Err(err))
		}
	}

	log.Info("admin logged in", slog.String("email", adminSession.Email))

	return c.JSON(http.StatusOK, response.Ok(adminSession))
}

// Logout godoc
// @Summary Revoke the current admin session
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	log := r.log.With(slog.String("op", op))

	token := SessionToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	if err := r.SessionService.Logout(c.Request().Context(), token); err != nil {
		return r.fail(c, log, err)
	}

	if sess, err := session.Get("admin", c); err == nil {
		sess.Options.MaxAge = -1
		_ = sess.Save(c.Request(), c.Response())
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "logged out"})
}

// LogoutAll godoc
// @Summary Revoke every admin session
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/admin/logout-all [post]
func (r *Routers) LogoutAll(c echo.Context) error {
	const op = "http.routers.LogoutAll"

	log := r.log.With(slog.String("op", op))

	if err := r.SessionService.LogoutAll(c.Request().Context()); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "all sessions revoked"})
}

// CheckSession godoc
// @Summary Check the current admin session
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 401 {object} response.Response
// @Router /api/v1/admin/session [get]
func (r *Routers) CheckSession(c echo.Context) error {
	const op = "http.routers.CheckSession"

	log := r.log.With(slog.String("op", op))

	token := SessionToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	email, err := r.SessionService.Validate(c.Request().Context(), token)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Ok(map[string]string{"email": email}))
}

// --- admin sliders ---

// CreateSlider godoc
// @Summary Create a slider
// @Tags sliders
// @Accept json
// @Produce json
// @Param request body dto.CreateSliderRequest true "Slider name and page section"
// @Success 201 {object} response.Response{data=models.Slider}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response "Slug already taken"
// @Router /api/v1/admin/sliders [post]
func (r *Routers) CreateSlider(c echo.Context) error {
	const op = "http.routers.CreateSlider"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateSliderRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	slider, err := r.SliderService.CreateSlider(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.Ok(slider))
}

// GetSlider godoc
// @Summary Get a slider by id
// @Tags sliders
// @Produce json
// @Param slider_id path string true "Slider UUID"
// @Success 200 {object} response.Response{data=models.Slider}
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/sliders/{slider_id} [get]
func (r *Routers) GetSlider(c echo.Context) error {
	const op = "http.routers.GetSlider"

	log := r.log.With(slog.String("op", op))

	sliderID, err := uuid.Parse(c.Param("slider_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid slider id"))
	}

	slider, err := r.SliderService.GetSlider(c.Request().Context(), sliderID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Ok(slider))
}

// DeleteSlider godoc
// @Summary Delete a slider and all of its items
// @Tags sliders
// @Produce json
// @Param slider_id path string true "Slider UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/sliders/{slider_id} [delete]
func (r *Routers) DeleteSlider(c echo.Context) error {
	const op = "http.routers.DeleteSlider"

	log := r.log.With(slog.String("op", op))

	sliderID, err := uuid.Parse(c.Param("slider_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid slider id"))
	}

	if err := r.SliderService.DeleteSlider(c.Request().Context(), sliderID); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "slider deleted"})
}

// AddSliderItem godoc
// @Summary Add an item to a slider
// @Description Appends the item at the end of the slider. YouTube references are normalized to the bare video id.
// @Tags sliders
// @Accept json
// @Produce json
// @Param slider_id path string true "Slider UUID"
// @Param request body dto.AddSliderItemRequest true "Item payload"
// @Success 201 {object} response.Response{data=models.SliderItem}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/sliders/{slider_id}/items [post]
func (r *Routers) AddSliderItem(c echo.Context) error {
	const op = "http.routers.AddSliderItem"

	log := r.log.With(slog.String("op", op))

	sliderID, err := uuid.Parse(c.Param("slider_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid slider id"))
	}

	var req dto.AddSliderItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	item, err := r.SliderService.AddItem(c.Request().Context(), sliderID, req)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.Ok(item))
}

// ReorderSlider godoc
// @Summary Reorder a slider's items
// @Description Accepts the complete desired ordering. The id set must match the slider's current items exactly.
// @Tags sliders
// @Accept json
// @Produce json
// @Param slider_id path string true "Slider UUID"
// @Param request body dto.ReorderRequest true "Ordered item ids"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Id set mismatch"
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/sliders/{slider_id}/reorder [put]
func (r *Routers) ReorderSlider(c echo.Context) error {
	const op = "http.routers.ReorderSlider"

	log := r.log.With(slog.String("op", op))

	sliderID, err := uuid.Parse(c.Param("slider_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid slider id"))
	}

	var req dto.ReorderRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	if err := r.SliderService.Reorder(c.Request().Context(), sliderID, req); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "slider reordered"})
}

// UpdateSliderItem godoc
// @Summary Update a slider item
// @Tags sliders
// @Accept json
// @Produce json
// @Param item_id path string true "Item UUID"
// @Param request body dto.UpdateSliderItemRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/items/{item_id} [patch]
func (r *Routers) UpdateSliderItem(c echo.Context) error {
	const op = "http.routers.UpdateSliderItem"

	log := r.log.With(slog.String("op", op))

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid item id"))
	}

	var req dto.UpdateSliderItemRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	if err := r.SliderService.UpdateItem(c.Request().Context(), itemID, req); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "item updated"})
}

// ToggleSliderItem godoc
// @Summary Toggle an item's visibility
// @Tags sliders
// @Produce json
// @Param item_id path string true "Item UUID"
// @Success 200 {object} response.Response{data=map[string]bool}
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/items/{item_id}/toggle [post]
func (r *Routers) ToggleSliderItem(c echo.Context) error {
	const op = "http.routers.ToggleSliderItem"

	log := r.log.With(slog.String("op", op))

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid item id"))
	}

	isActive, err := r.SliderService.ToggleItemActive(c.Request().Context(), itemID)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Ok(map[string]bool{"is_active": isActive}))
}

// DeleteSliderItem godoc
// @Summary Delete a slider item
// @Tags sliders
// @Produce json
// @Param item_id path string true "Item UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/items/{item_id} [delete]
func (r *Routers) DeleteSliderItem(c echo.Context) error {
	const op = "http.routers.DeleteSliderItem"

	log := r.log.With(slog.String("op", op))

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, "invalid item id"))
	}

	if err := r.SliderService.DeleteItem(c.Request().Context(), itemID); err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "item deleted"})
}

// --- admin content and config ---

// UpsertContent godoc
// @Summary Create or replace a content block
// @Description Idempotent on (section_key, locale).
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.UpsertContentRequest true "Content block"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/admin/content [put]
func (r *Routers) UpsertContent(c echo.Context) error {
	const op = "http.routers.UpsertContent"

	log := r.log.With(slog.String("op", op))

	var req dto.UpsertContentRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	if err := r.ConfigService.UpsertContent(c.Request().Context(), req); err != nil {
		return r.fail(c, log, err)
	}

	r.ContentService.Invalidate("content:" + req.SectionKey)

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "content saved"})
}

// UpsertConfig godoc
// @Summary Create or replace a site setting
// @Description Idempotent on key.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.UpsertConfigRequest true "Site setting"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/admin/config [put]
func (r *Routers) UpsertConfig(c echo.Context) error {
	const op = "http.routers.UpsertConfig"

	log := r.log.With(slog.String("op", op))

	var req dto.UpsertConfigRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest,
			response.Err(response.CodeValidation, err.Error()))
	}

	if err := r.ConfigService.UpsertConfig(c.Request().Context(), req); err != nil {
		return r.fail(c, log, err)
	}

	r.ContentService.Invalidate("config")

	return c.JSON(http.StatusOK, response.Response{Success: true, Message: "config saved"})
}

// InvalidateCache godoc
// @Summary Drop cached content
// @Description Drops entries whose key starts with tag; empty tag flushes everything.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.InvalidateCacheRequest true "Cache tag"
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/admin/cache/invalidate [post]
func (r *Routers) InvalidateCache(c echo.Context) error {
	const op = "http.routers.InvalidateCache"

	var req dto.InvalidateCacheRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	dropped := r.ContentService.Invalidate(req.Tag)

	r.log.Info("cache invalidated via api",
		slog.String("op", op),
		slog.String("tag", req.Tag),
		slog.Int("dropped", dropped),
	)

	return c.JSON(http.StatusOK, response.Ok(map[string]int{"dropped": dropped}))
}

// UploadMedia godoc
// @Summary Upload media files
// @Description Multipart upload; accepted files are stored under the optional folder and returned with public URLs.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Param folder formData string false "Target subfolder"
// @Success 201 {object} response.Response{data=[]models.UploadedFile}
// @Failure 400 {object} response.Response
// @Router /api/v1/admin/media/upload [post]
func (r *Routers) UploadMedia(c echo.Context) error {
	const op = "http.routers.UploadMedia"

	log := r.log.With(slog.String("op", op))

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	files := form.File["files"]
	subPath := c.FormValue("folder")
	if subPath == "" {
		subPath = "media"
	}

	uploaded, err := r.MediaService.Upload(c.Request().Context(), files, subPath)
	if err != nil {
		return r.fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.Ok(uploaded))
}

// SessionToken pulls the admin session token from the Authorization
// bearer header, falling back to the cookie session.
func SessionToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
		return token
	}

	sess, err := session.Get("admin", c)
	if err != nil {
		return ""
	}

	token, _ := sess.Values["admin_token"].(string)

	return token
}

func toSliderResponse(s models.SliderWithItems) dto.SliderResponse {
	items := make([]dto.SliderItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, toSliderItemResponse(it))
	}

	return dto.SliderResponse{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		Section:   s.Section,
		IsActive:  s.IsActive,
		Position:  s.Position,
		Items:     items,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSliderItemResponse(it models.SliderItem) dto.SliderItemResponse {
	out := dto.SliderItemResponse{
		ID:         it.ID,
		Type:       string(it.Type),
		Title:      it.Title,
		Alt:        it.Alt,
		ArtistName: it.ArtistName,
		Width:      it.Width,
		Height:     it.Height,
		Position:   it.Position,
		IsActive:   it.IsActive,
	}

	if it.URL != nil {
		out.URL = *it.URL
	}

	if it.YoutubeID != nil {
		out.YoutubeID = *it.YoutubeID
		out.ThumbnailURL = youtube.ThumbnailURL(*it.YoutubeID, "")
		out.EmbedURL = youtube.EmbedURL(*it.YoutubeID, youtube.EmbedOptions{Controls: true})
	}

	return out
}
