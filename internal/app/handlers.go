package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/qre/internal/estimatorsvc"
	"github.com/kegliz/qre/qc/estimator"
	"github.com/kegliz/qre/qc/estimator/modeling"
	"github.com/kegliz/qre/qc/estimator/registry"
	"github.com/kegliz/qre/qc/factorybuilder"
	"github.com/kegliz/qre/qc/overheadmodel"
	"github.com/kegliz/qre/qc/protocol"
)

var badRequestErrorMsg = "Bad Request - please contact the administrator"
var internalServerErrorMsg = "Internal Server Error - please contact the administrator"

// ErrorBudgetRequest is the wire shape of modeling.ErrorBudget.
type ErrorBudgetRequest struct {
	Logical     float64 `json:"logical"`
	MagicStates float64 `json:"magicStates"`
	Rotations   float64 `json:"rotations"`
}

// EstimateRequest is the shared request body for /api/estimate and
// /api/frontier.
type EstimateRequest struct {
	Protocol           string                      `json:"protocol"`
	CliffordErrorRate  float64                     `json:"cliffordErrorRate"`
	AlgorithmID        string                      `json:"algorithmId,omitempty"`
	Algorithm          *overheadmodel.LogicalCounts `json:"algorithm,omitempty"`
	ErrorBudget        ErrorBudgetRequest          `json:"errorBudget"`
	LogicalDepthFactor *float64                    `json:"logicalDepthFactor,omitempty"`
	MaxFactories       *uint64                     `json:"maxFactories,omitempty"`
	MaxDurationNs      *uint64                     `json:"maxDurationNs,omitempty"`
	MaxPhysicalQubits  *uint64                     `json:"maxPhysicalQubits,omitempty"`
}

// ResultResponse is the wire shape of estimator.Result.
type ResultResponse struct {
	CodeDistance                uint64  `json:"codeDistance"`
	PhysicalQubitsPerLogicalQubit uint64 `json:"physicalQubitsPerLogicalQubit"`
	LogicalCycleTimeNs           uint64  `json:"logicalCycleTimeNs"`
	NumCycles                    uint64  `json:"numCycles"`
	HasFactory                   bool    `json:"hasFactory"`
	NumFactories                 uint64  `json:"numFactories"`
	NumFactoryRuns               uint64  `json:"numFactoryRuns"`
	PhysicalQubitsForAlgorithm   uint64  `json:"physicalQubitsForAlgorithm"`
	PhysicalQubitsForFactories   uint64  `json:"physicalQubitsForFactories"`
	PhysicalQubits               uint64  `json:"physicalQubits"`
	RuntimeNs                    uint64  `json:"runtimeNs"`
	RQOPS                        uint64  `json:"rqops"`
}

type estimation = estimator.Estimation[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts]
type estimationResult = estimator.Result[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts]

func toResultResponse(r *estimationResult) ResultResponse {
	_, hasFactory := r.Factory()
	return ResultResponse{
		CodeDistance:                  r.LogicalQubit().CodeDistance(),
		PhysicalQubitsPerLogicalQubit: r.LogicalQubit().PhysicalQubits(),
		LogicalCycleTimeNs:            r.LogicalQubit().LogicalCycleTime(),
		NumCycles:                     r.NumCycles(),
		HasFactory:                    hasFactory,
		NumFactories:                  r.NumFactories(),
		NumFactoryRuns:                r.NumFactoryRuns(),
		PhysicalQubitsForAlgorithm:    r.PhysicalQubitsForAlgorithm(),
		PhysicalQubitsForFactories:    r.PhysicalQubitsForFactories(),
		PhysicalQubits:                r.PhysicalQubits(),
		RuntimeNs:                     r.Runtime(),
		RQOPS:                         r.RQOPS(),
	}
}

// RootHandler is the handler for the / endpoint.
func (a *appServer) RootHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving root endpoint")
	c.JSON(http.StatusOK, gin.H{
		"name":      "qre",
		"version":   a.version,
		"backends":  registry.ListBackends(),
	})
}

// HealthHandler is the handler for the /health endpoint.
func (a *appServer) HealthHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

func (a *appServer) resolveOverhead(req *EstimateRequest) (overheadmodel.LogicalCounts, error) {
	if req.AlgorithmID != "" {
		return a.store.Get(req.AlgorithmID)
	}
	if req.Algorithm != nil {
		return *req.Algorithm, nil
	}
	return overheadmodel.LogicalCounts{}, errors.New("either algorithmId or algorithm must be provided")
}

func (a *appServer) buildEstimation(req *EstimateRequest) (*estimation, error) {
	overhead, err := a.resolveOverhead(req)
	if err != nil {
		return nil, err
	}

	backend, err := registry.Create(req.Protocol, req.CliffordErrorRate)
	if err != nil {
		return nil, err
	}

	budget, err := modeling.NewErrorBudget(req.ErrorBudget.Logical, req.ErrorBudget.MagicStates, req.ErrorBudget.Rotations)
	if err != nil {
		return nil, err
	}

	est := estimator.New[*protocol.SuperconductingQubit, *factorybuilder.DistillationFactory, overheadmodel.LogicalCounts](
		backend.ECP, backend.Qubit, backend.Builder, overhead, budget,
	)

	if req.LogicalDepthFactor != nil {
		est.SetLogicalDepthFactor(*req.LogicalDepthFactor)
	}
	if req.MaxFactories != nil {
		est.SetMaxFactories(*req.MaxFactories)
	}
	if req.MaxDurationNs != nil {
		est.SetMaxDuration(*req.MaxDurationNs)
	}
	if req.MaxPhysicalQubits != nil {
		est.SetMaxPhysicalQubits(*req.MaxPhysicalQubits)
	}

	return est, nil
}

// EstimateHandler is the handler for the /api/estimate endpoint.
func (a *appServer) EstimateHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving estimate endpoint")

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	est, err := a.buildEstimation(&req)
	if err != nil {
		l.Error().Err(err).Msg("building estimation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := est.Estimate()
	if err != nil {
		l.Warn().Err(err).Msg("estimate failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResultResponse(result))
}

// FrontierHandler is the handler for the /api/frontier endpoint.
func (a *appServer) FrontierHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving frontier endpoint")

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	est, err := a.buildEstimation(&req)
	if err != nil {
		l.Error().Err(err).Msg("building estimation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	frontier, err := est.BuildFrontier()
	if err != nil {
		l.Warn().Err(err).Msg("frontier failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	responses := make([]ResultResponse, len(frontier))
	for i, r := range frontier {
		responses[i] = toResultResponse(r)
	}
	c.JSON(http.StatusOK, responses)
}

// SaveAlgorithmHandler is the handler for the POST /api/algorithms endpoint.
func (a *appServer) SaveAlgorithmHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving algorithm save endpoint")

	var counts overheadmodel.LogicalCounts
	if err := c.ShouldBindJSON(&counts); err != nil {
		l.Error().Err(err).Msg("binding json failed")
		c.String(http.StatusBadRequest, badRequestErrorMsg)
		return
	}

	id := a.store.Save(counts)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetAlgorithmHandler is the handler for the GET /api/algorithms/:id endpoint.
func (a *appServer) GetAlgorithmHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving algorithm get endpoint")

	id := c.Param("id")
	counts, err := a.store.Get(id)
	if err != nil {
		if errors.Is(err, estimatorsvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "algorithm profile not found"})
			return
		}
		l.Error().Err(err).Msg("fetching algorithm failed")
		c.String(http.StatusInternalServerError, internalServerErrorMsg)
		return
	}
	c.JSON(http.StatusOK, counts)
}
