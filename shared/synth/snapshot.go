package synth

import (
	"supervisionlab-backend/shared/database/models"
)

// Snapshot is the complete generated dataset for one run. Every downstream
// consumer (relational seeder, landing-file seeder, mock API) reads from a
// single snapshot; nothing mutates it after generation.
type Snapshot struct {
	// Supervision entities, in relational dependency order.
	Regions     []models.Region
	Supervisors []models.Supervisor
	Workers     []models.Worker
	Cases       []models.Case
	Reviews     []models.Review

	// CRM-style object graph, generated independently of the above.
	Contacts  []CRMObject
	Companies []CRMObject
	Deals     []CRMObject
}
