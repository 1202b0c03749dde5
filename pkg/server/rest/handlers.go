package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/server"
	"lintang/roadgraph/pkg/server/rest/service"
	"lintang/roadgraph/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, src, dst geo.Point, alg routingalgorithm.Algorithm, withVisited bool) (service.ShortestPathResult, error)
	NearestStreets(ctx context.Context, p geo.Point, limit int) ([]service.NearbyStreet, error)
	GraphInfo(ctx context.Context) service.GraphInfo
}

type NavigationHandler struct {
	svc              NavigationService
	promeMetrics     *Metrics
	defaultAlgorithm routingalgorithm.Algorithm
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *Metrics, defaultAlgorithm routingalgorithm.Algorithm) {
	handler := &NavigationHandler{svc, m, defaultAlgorithm}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Get("/nearest-streets", handler.nearestStreets)
			r.Get("/graph-info", handler.graphInfo)
		})
	})
}

func validateStruct(data interface{}) render.Renderer {
	validate := validator.New()
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	return ErrValidation(err, vv)
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 tempat di openstreetmap
type ShortestPathRequest struct {
	SrcLat      *float64 `json:"src_lat" validate:"required,gte=-90,lte=90"`
	SrcLon      *float64 `json:"src_lon" validate:"required,gte=-180,lte=180"`
	DstLat      *float64 `json:"dst_lat" validate:"required,gte=-90,lte=90"`
	DstLon      *float64 `json:"dst_lon" validate:"required,gte=-180,lte=180"`
	Algorithm   string   `json:"algorithm,omitempty" validate:"omitempty,oneof=bfs dijkstra astar"`
	WithVisited bool     `json:"with_visited,omitempty"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Algorithm == "" {
		return nil
	}
	alg, err := routingalgorithm.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return err
	}
	s.Algorithm = alg.String()
	return nil
}

// ShortestPathResponse	model info
//
//	@Description	response body untuk shortest path query antara 2 tempat di openstreetmap
type ShortestPathResponse struct {
	Path         string                  `json:"path"`
	Dist         float64                 `json:"distance"`
	Hops         int                     `json:"hops"`
	Found        bool                    `json:"found"`
	Route        []geo.Point             `json:"route"`
	Roads        []routingalgorithm.Road `json:"roads"`
	Alg          string                  `json:"algorithm"`
	Source       geo.Point               `json:"source"`
	Destination  geo.Point               `json:"destination"`
	NodesVisited int                     `json:"nodes_visited"`
	VisitedOrder []geo.Point             `json:"visited_order,omitempty"`
}

func NewShortestPathResponse(res service.ShortestPathResult) *ShortestPathResponse {
	route := res.Path
	roads := res.Roads
	if route == nil {
		route = []geo.Point{}
		roads = []routingalgorithm.Road{}
	}
	return &ShortestPathResponse{
		Path:         datastructure.RenderPath(route),
		Dist:         util.RoundFloat(res.Cost, 3),
		Hops:         res.Hops(),
		Found:        res.Found,
		Route:        route,
		Roads:        roads,
		Alg:          res.Algorithm.String(),
		Source:       res.Source,
		Destination:  res.Destination,
		NodesVisited: res.Visited,
		VisitedOrder: res.VisitedOrder,
	}
}

// shortestPath
//
//	@Summary		shortest path query antara 2 tempat di openstreetmap.
//	@Description	shortest path query antara 2 tempat di openstreetmap pakai bfs, dijkstra, atau astar. lokasi di snap ke node jalan terdekat.
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 tempat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := validateStruct(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	alg := h.defaultAlgorithm
	if data.Algorithm != "" {
		alg = routingalgorithm.Algorithm(data.Algorithm)
	}

	res, err := h.svc.ShortestPath(r.Context(), geo.NewPoint(*data.SrcLat, *data.SrcLon), geo.NewPoint(*data.DstLat, *data.DstLon),
		alg, data.WithVisited)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(alg.String(), strconv.FormatBool(res.Found)).Inc()
	h.promeMetrics.VisitedNodes.WithLabelValues(alg.String()).Observe(float64(res.Visited))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(res))
}

// NearestStreetsRequest model info
//
//	@Description	query param untuk mencari jalan di sekitar suatu lokasi
type NearestStreetsRequest struct {
	Lat   float64 `validate:"gte=-90,lte=90"`
	Lon   float64 `validate:"gte=-180,lte=180"`
	Limit int     `validate:"omitempty,gte=1,lte=100"`
}

// NearestStreetsResponse model info
//
//	@Description	response body jalan-jalan di sekitar suatu lokasi
type NearestStreetsResponse struct {
	Streets []service.NearbyStreet `json:"streets"`
}

func parseQueryFloat(r *http.Request, key string) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("query param %s is required", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("query param %s: %w", key, err)
	}
	return f, nil
}

// nearestStreets
//
//	@Summary		jalan-jalan di sekitar suatu lokasi.
//	@Description	jalan-jalan di sekitar suatu lokasi dari h3 street index, urut dari yang paling dekat.
//	@Tags			navigations
//	@Param			lat		query	number	true	"latitude"
//	@Param			lon		query	number	true	"longitude"
//	@Param			limit	query	int		false	"jumlah maksimal jalan"
//	@Produce		application/json
//	@Router			/navigations/nearest-streets [get]
//	@Success		200	{object}	NearestStreetsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) nearestStreets(w http.ResponseWriter, r *http.Request) {
	data := NearestStreetsRequest{}
	var err error
	if data.Lat, err = parseQueryFloat(r, "lat"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if data.Lon, err = parseQueryFloat(r, "lon"); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if data.Limit, err = strconv.Atoi(limit); err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
	}
	if errRend := validateStruct(data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	streets, err := h.svc.NearestStreets(r.Context(), geo.NewPoint(data.Lat, data.Lon), data.Limit)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &NearestStreetsResponse{Streets: streets})
}

// graphInfo
//
//	@Summary		jumlah vertex dan edge road graph.
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/graph-info [get]
//	@Success		200	{object}	service.GraphInfo
func (h *NavigationHandler) graphInfo(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.svc.GraphInfo(r.Context()))
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
