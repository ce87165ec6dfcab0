package synth

// CRM-style object graph mirroring a HubSpot CRM API v3 payload: opaque
// sequential string ids, a string-typed property bag, top-level timestamps
// and (for deals) an association list.

// AssociationRef points at another CRM object by id.
type AssociationRef struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// AssociationList is the v3 association envelope.
type AssociationList struct {
	Results []AssociationRef `json:"results"`
}

// CRMObject is a contact, company or deal. Immutable once generated.
type CRMObject struct {
	ID           string                     `json:"id"`
	Properties   map[string]string          `json:"properties"`
	CreatedAt    string                     `json:"createdAt"`
	UpdatedAt    string                     `json:"updatedAt"`
	Archived     bool                       `json:"archived"`
	Associations map[string]AssociationList `json:"associations,omitempty"`
}

// ContactID returns the id of the first associated contact, or "" when the
// deal carries no contact association.
func (o CRMObject) ContactID() string {
	assoc, ok := o.Associations["contacts"]
	if !ok || len(assoc.Results) == 0 {
		return ""
	}
	return assoc.Results[0].ID
}

// Property name ordering is fixed per object type and shared by the CSV
// serializer and the schemas endpoint of the mock API.
var (
	ContactPropertyNames = []string{
		"firstname",
		"lastname",
		"email",
		"phone",
		"company",
		"jobtitle",
		"lifecyclestage",
		"hs_lead_status",
		"createdate",
		"lastmodifieddate",
		"hs_object_id",
	}

	CompanyPropertyNames = []string{
		"name",
		"domain",
		"industry",
		"numberofemployees",
		"annualrevenue",
		"city",
		"state",
		"country",
		"phone",
		"createdate",
		"hs_lastmodifieddate",
		"hs_object_id",
	}

	DealPropertyNames = []string{
		"dealname",
		"amount",
		"dealstage",
		"pipeline",
		"closedate",
		"createdate",
		"hs_lastmodifieddate",
		"hs_object_id",
	}
)
