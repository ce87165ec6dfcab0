package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supervisionlab-backend/shared/synth"
)

const maxPageSize = 100

// CRMHandler serves the CRM-style half of a snapshot. The snapshot is built
// once at process start and injected here; handlers never touch package
// state.
type CRMHandler struct {
	collections map[string][]synth.CRMObject
	properties  map[string][]string
}

// NewCRMHandler wires a snapshot into the three object collections.
func NewCRMHandler(snap *synth.Snapshot) *CRMHandler {
	return &CRMHandler{
		collections: map[string][]synth.CRMObject{
			"contacts":  snap.Contacts,
			"companies": snap.Companies,
			"deals":     snap.Deals,
		},
		properties: map[string][]string{
			"contacts":  synth.ContactPropertyNames,
			"companies": synth.CompanyPropertyNames,
			"deals":     synth.DealPropertyNames,
		},
	}
}

// ListObjects returns one page of a collection in the v3 envelope:
// {results: [...], paging?: {next: {after, link}}}. The after cursor is a
// stringified offset.
func (h *CRMHandler) ListObjects(c *gin.Context) {
	objects, ok := h.collections[c.Param("objectType")]
	if !ok {
		notFound(c, "Unknown object type: "+c.Param("objectType"))
		return
	}

	limit := maxPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "Invalid limit parameter")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	start := 0
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			badRequest(c, "Invalid after cursor")
			return
		}
		start = parsed
	}

	if start > len(objects) {
		start = len(objects)
	}
	end := start + limit
	if end > len(objects) {
		end = len(objects)
	}

	response := gin.H{"results": objects[start:end]}
	if end < len(objects) {
		after := strconv.Itoa(end)
		response["paging"] = gin.H{"next": gin.H{"after": after, "link": "?after=" + after}}
	}

	c.JSON(http.StatusOK, response)
}

// GetObject returns a single object by id.
func (h *CRMHandler) GetObject(c *gin.Context) {
	objectType := c.Param("objectType")
	objects, ok := h.collections[objectType]
	if !ok {
		notFound(c, "Unknown object type: "+objectType)
		return
	}

	objectID := c.Param("objectID")
	for _, object := range objects {
		if object.ID == objectID {
			c.JSON(http.StatusOK, object)
			return
		}
	}

	notFound(c, "Object not found: "+objectType+"/"+objectID)
}

// SearchObjects returns the whole collection; the mock does not evaluate
// filter groups.
func (h *CRMHandler) SearchObjects(c *gin.Context) {
	objects, ok := h.collections[c.Param("objectType")]
	if !ok {
		notFound(c, "Unknown object type: "+c.Param("objectType"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(objects),
		"results": objects,
	})
}

// ListSchemas returns property metadata for all object types, for connector
// discovery.
func (h *CRMHandler) ListSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"results": []gin.H{
			h.schemaFor("contacts"),
			h.schemaFor("companies"),
			h.schemaFor("deals"),
		},
	})
}

// GetSchema returns property metadata for one object type.
func (h *CRMHandler) GetSchema(c *gin.Context) {
	objectType := c.Param("objectType")
	if _, ok := h.collections[objectType]; !ok {
		notFound(c, "Schema not found for "+objectType)
		return
	}
	c.JSON(http.StatusOK, h.schemaFor(objectType))
}

// Legacy aliases preserved for client-compatibility testing.

// LegacyContacts serves the v1 list-all envelope.
func (h *CRMHandler) LegacyContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contacts":   h.collections["contacts"],
		"has-more":   false,
		"vid-offset": 0,
	})
}

// LegacyDeals serves the v1 paged-deals envelope.
func (h *CRMHandler) LegacyDeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"deals":   h.collections["deals"],
		"hasMore": false,
		"offset":  0,
	})
}

// LegacyCompanies serves the v2 paged-companies envelope.
func (h *CRMHandler) LegacyCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"companies": h.collections["companies"],
		"has-more":  false,
		"offset":    0,
	})
}

// CatchAll answers any unrecognized path with an empty but correctly shaped
// envelope instead of a hard 404, so probing clients keep working.
func (h *CRMHandler) CatchAll(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": []synth.CRMObject{}})
}

func (h *CRMHandler) schemaFor(objectType string) gin.H {
	names := h.properties[objectType]
	properties := make([]gin.H, 0, len(names))
	for _, name := range names {
		properties = append(properties, gin.H{
			"name":  name,
			"type":  propertyTypes[name],
			"label": propertyLabels[name],
		})
	}

	return gin.H{
		"id":         objectType,
		"name":       objectType,
		"labels":     gin.H{"singular": schemaSingular[objectType], "plural": schemaPlural[objectType]},
		"properties": properties,
	}
}

var schemaSingular = map[string]string{
	"contacts":  "Contact",
	"companies": "Company",
	"deals":     "Deal",
}

var schemaPlural = map[string]string{
	"contacts":  "Contacts",
	"companies": "Companies",
	"deals":     "Deals",
}

var propertyLabels = map[string]string{
	"firstname":           "First Name",
	"lastname":            "Last Name",
	"email":               "Email",
	"phone":               "Phone",
	"company":             "Company",
	"jobtitle":            "Job Title",
	"lifecyclestage":      "Lifecycle Stage",
	"hs_lead_status":      "Lead Status",
	"createdate":          "Create Date",
	"lastmodifieddate":    "Last Modified",
	"hs_lastmodifieddate": "Last Modified",
	"hs_object_id":        "Object ID",
	"name":                "Name",
	"domain":              "Domain",
	"industry":            "Industry",
	"numberofemployees":   "Employees",
	"annualrevenue":       "Annual Revenue",
	"city":                "City",
	"state":               "State",
	"country":             "Country",
	"dealname":            "Deal Name",
	"amount":              "Amount",
	"dealstage":           "Deal Stage",
	"pipeline":            "Pipeline",
	"closedate":           "Close Date",
}

var propertyTypes = map[string]string{
	"firstname":           "string",
	"lastname":            "string",
	"email":               "string",
	"phone":               "string",
	"company":             "string",
	"jobtitle":            "string",
	"lifecyclestage":      "string",
	"hs_lead_status":      "string",
	"createdate":          "datetime",
	"lastmodifieddate":    "datetime",
	"hs_lastmodifieddate": "datetime",
	"hs_object_id":        "string",
	"name":                "string",
	"domain":              "string",
	"industry":            "string",
	"numberofemployees":   "number",
	"annualrevenue":       "number",
	"city":                "string",
	"state":               "string",
	"country":             "string",
	"dealname":            "string",
	"amount":              "number",
	"dealstage":           "string",
	"pipeline":            "string",
	"closedate":           "datetime",
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":        "error",
		"message":       message,
		"correlationId": uuid.NewString(),
		"category":      "OBJECT_NOT_FOUND",
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":        "error",
		"message":       message,
		"correlationId": uuid.NewString(),
		"category":      "VALIDATION_ERROR",
	})
}
