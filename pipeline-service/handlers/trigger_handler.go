package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"supervisionlab-backend/shared/config"
)

// TriggerRequest selects which simulated ELT job to run.
type TriggerRequest struct {
	Job         string `json:"job"`
	Environment string `json:"environment"`
	TriggeredBy string `json:"triggered_by"`
}

// TriggerResponse reports a simulated job run.
type TriggerResponse struct {
	Status           string   `json:"status"`
	Job              string   `json:"job"`
	Environment      string   `json:"environment"`
	TriggeredBy      string   `json:"triggered_by"`
	Message          string   `json:"message"`
	StreamsSynced    []string `json:"streams_synced"`
	RecordsProcessed int      `json:"records_processed"`
	ModelsBuilt      []string `json:"models_built"`
	TestsPassed      int      `json:"tests_passed"`
}

type jobConfig struct {
	Streams     []string
	Records     int
	Models      []string
	TestsPassed int
}

var oltpStreams = []string{
	"public-regions",
	"public-supervisors",
	"public-workers",
	"public-cases",
	"public-reviews",
}

var warehouseModels = []string{
	"stg_oltp__regions",
	"stg_oltp__supervisors",
	"stg_oltp__workers",
	"stg_oltp__cases",
	"stg_oltp__reviews",
	"int_case_review_status",
	"int_supervisor_daily_metrics",
	"dim_supervisor",
	"dim_worker",
	"dim_region",
	"fact_worker_case_load",
}

// jobConfigs mirrors the orchestrator's job definitions. Nothing executes;
// the stub reports what the real pipeline would have synced.
var jobConfigs = map[string]jobConfig{
	"el-postgres": {
		Streams: oltpStreams,
		Records: 350,
	},
	"el-s3": {
		Streams: []string{"contacts_csv", "deals_csv"},
		Records: 80,
	},
	"el-hubspot": {
		Streams: []string{"contacts", "companies", "deals"},
		Records: 100,
	},
	"el-all": {
		Streams: concat(oltpStreams, []string{"contacts_csv", "deals_csv", "contacts", "companies", "deals"}),
		Records: 530,
	},
	"elt-postgres": {
		Streams:     oltpStreams,
		Records:     350,
		Models:      warehouseModels,
		TestsPassed: 24,
	},
	"elt-all": {
		Streams: concat(oltpStreams, []string{"contacts_csv", "deals_csv", "contacts", "companies", "deals"}),
		Records: 530,
		Models: concat(
			warehouseModels[:5],
			append([]string{"stg_s3__contacts", "stg_hubspot__contacts"}, warehouseModels[5:]...),
		),
		TestsPassed: 24,
	},
}

// TriggerPipeline simulates triggering the external ELT orchestrator.
// Unknown jobs resolve to an empty config rather than an error.
func TriggerPipeline(c *gin.Context) {
	var req TriggerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
			return
		}
	}

	if req.Job == "" {
		req.Job = "elt-postgres"
	}
	if req.Environment == "" {
		req.Environment = config.GetConfig().MeltanoEnvironment
	}
	if req.TriggeredBy == "" {
		req.TriggeredBy = "manual"
	}

	cfg := jobConfigs[req.Job]

	elPart := fmt.Sprintf("%d streams, ~%d records", len(cfg.Streams), cfg.Records)
	tPart := ""
	if len(cfg.Models) > 0 {
		tPart = fmt.Sprintf(", %d dbt models, %d tests passed", len(cfg.Models), cfg.TestsPassed)
	}

	c.JSON(http.StatusOK, TriggerResponse{
		Status:           "completed",
		Job:              req.Job,
		Environment:      req.Environment,
		TriggeredBy:      req.TriggeredBy,
		Message:          fmt.Sprintf("Meltano job '%s' completed: %s%s", req.Job, elPart, tPart),
		StreamsSynced:    emptyIfNil(cfg.Streams),
		RecordsProcessed: cfg.Records,
		ModelsBuilt:      emptyIfNil(cfg.Models),
		TestsPassed:      cfg.TestsPassed,
	})
}

// ListJobs returns the known job names.
func ListJobs(c *gin.Context) {
	jobs := make([]string, 0, len(jobConfigs))
	for name := range jobConfigs {
		jobs = append(jobs, name)
	}
	sort.Strings(jobs)

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
