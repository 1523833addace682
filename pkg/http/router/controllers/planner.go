package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/primplanner/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/primplanner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type plannerAPI struct {
	baseAPI
	plannerService PlannerService
	validate       *validator.Validate
	trans          ut.Translator
}

func New(plannerService PlannerService, log *zap.Logger) *plannerAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &plannerAPI{
		baseAPI:        baseAPI{log: log},
		plannerService: plannerService,
		validate:       validate,
		trans:          trans,
	}
}

func (api *plannerAPI) Routes(group *helper.RouteGroup) {
	group.GET("/plan", api.plan)
	group.GET("/sweep", api.sweep)
	group.GET("/scenario", api.scenario)
}

func (api *plannerAPI) validationError(err error) error {
	vv := translateError(err, api.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

// parsePlanRequest reads the plan query parameters. Missing parameters take the configured
// defaults.
func (api *plannerAPI) parsePlanRequest(query map[string][]string) (planRequest, error) {
	get := func(key string) string {
		if v, ok := query[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	request := planRequest{
		Algorithm: viper.GetString("DEFAULT_ALGORITHM"),
		Heuristic: viper.GetString("DEFAULT_HEURISTIC"),
		Weight:    viper.GetFloat64("DEFAULT_WEIGHT"),
		MaxNodes:  viper.GetInt("MAX_NODES"),

		MaxBoundEscalations: viper.GetInt("MAX_BOUND_ESCALATIONS"),
	}
	var err error
	if v := get("algorithm"); v != "" {
		request.Algorithm = v
	}
	if v := get("heuristic"); v != "" {
		request.Heuristic = v
	}
	if v := get("weight"); v != "" {
		request.Weight, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return request, errors.New("weight must be a valid float")
		}
	}
	if v := get("max_nodes"); v != "" {
		request.MaxNodes, err = strconv.Atoi(v)
		if err != nil {
			return request, errors.New("max_nodes must be a valid int")
		}
	}
	if v := get("max_depth"); v != "" {
		request.MaxDepth, err = strconv.Atoi(v)
		if err != nil {
			return request, errors.New("max_depth must be a valid int")
		}
	}
	if err := api.validate.Struct(request); err != nil {
		return request, api.validationError(err)
	}
	return request, nil
}

// plan
//
//	@Summary		search a motion plan from the scenario's initial state to its goal region
//	@Tags			planner
//	@Param			algorithm	query	string	false	"astar, idastar or dfs"
//	@Param			heuristic	query	string	false	"euclidean or manhattan"
//	@Param			weight		query	number	false	"heuristic weight"
//	@Param			max_nodes	query	integer	false	"node budget, 0 is unbounded"
//	@Produce		application/json
//	@Router			/api/plan [get]
//	@Success		200	{object}	planResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *plannerAPI) plan(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, err := api.parsePlanRequest(r.URL.Query())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	req, err := request.toEngineRequest()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, cached, err := api.plannerService.Plan(r.Context(), req)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlanResponse(res, cached)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// sweep
//
//	@Summary		run A* and IDA* with both heuristics for every weight
//	@Tags			planner
//	@Param			weights		query	string	true	"comma separated weights, e.g. 1,2,3"
//	@Param			max_nodes	query	integer	false	"node budget per search"
//	@Produce		application/json
//	@Router			/api/sweep [get]
//	@Success		200	{object}	[]sweepItemResponse
//	@Failure		400	{object}	errorResponse
func (api *plannerAPI) sweep(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request sweepRequest
		err     error
	)
	query := r.URL.Query()

	request.Weights, err = util.ParseFloatList(query.Get("weights"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("weights must be a comma separated list of floats"))
		return
	}
	request.MaxNodes = viper.GetInt("MAX_NODES")
	if v := query.Get("max_nodes"); v != "" {
		request.MaxNodes, err = strconv.Atoi(v)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("max_nodes must be a valid int"))
			return
		}
	}
	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, api.validationError(err))
		return
	}

	base, _ := planRequest{Algorithm: "astar", Heuristic: "euclidean", MaxNodes: request.MaxNodes,
		MaxBoundEscalations: viper.GetInt("MAX_BOUND_ESCALATIONS")}.toEngineRequest()
	results := api.plannerService.Sweep(r.Context(), request.Weights, base)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSweepResponse(results)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// scenario
//
//	@Summary		the loaded scenario
//	@Tags			planner
//	@Produce		application/json
//	@Router			/api/scenario [get]
func (api *plannerAPI) scenario(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.plannerService.Scenario()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
