package synth

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"supervisionlab-backend/shared/database/models"
)

// DefaultSeed is the fixed seed for reproducible snapshots. Every consumer
// of the harness generates from the same seed so the relational store, the
// landing bucket and the mock API all describe one consistent dataset.
const DefaultSeed = 42

const iso8601Millis = "2006-01-02T15:04:05.000Z"

// Counts controls how many records each stage emits. Regions are a fixed
// static table and have no count.
type Counts struct {
	Supervisors int
	Workers     int
	Cases       int
	Reviews     int
	Contacts    int
	Companies   int
	Deals       int
}

// DefaultCounts matches the reference dataset sizes.
func DefaultCounts() Counts {
	return Counts{
		Supervisors: 10,
		Workers:     30,
		Cases:       100,
		Reviews:     200,
		Contacts:    50,
		Companies:   20,
		Deals:       30,
	}
}

// Generator produces deterministic synthetic snapshots. It owns its random
// source and faker instance; no global RNG state is touched, so parallel
// test runs stay independent and a fixed seed plus a fixed clock yields
// value-identical output.
type Generator struct {
	rng  *rand.Rand
	fake *gofakeit.Faker
	now  time.Time
}

// New returns a generator seeded with seed, using the current wall clock as
// "today" for review-status derivation.
func New(seed int64) *Generator {
	return NewAt(seed, time.Now().UTC())
}

// NewAt returns a generator with an explicit clock. Tests use this to make
// the time-dependent review statuses reproducible.
func NewAt(seed int64, now time.Time) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		fake: gofakeit.New(uint64(seed)),
		now:  now.UTC(),
	}
}

// GenerateAll produces a snapshot with the default counts.
func (g *Generator) GenerateAll() *Snapshot {
	return g.Generate(DefaultCounts())
}

// Generate runs the stages in strict dependency order: each stage consumes
// only previously generated stages. The CRM graph is independent of the
// supervision entities but shares the same seed stream.
func (g *Generator) Generate(counts Counts) *Snapshot {
	snap := &Snapshot{}

	snap.Regions = g.generateRegions()
	snap.Supervisors = g.generateSupervisors(snap.Regions, counts.Supervisors)
	snap.Workers = g.generateWorkers(snap.Supervisors, snap.Regions, counts.Workers)
	snap.Cases = g.generateCases(snap.Workers, counts.Cases)
	snap.Reviews = g.generateReviews(snap.Cases, snap.Workers, counts.Reviews)

	snap.Contacts = g.generateContacts(counts.Contacts)
	snap.Companies = g.generateCompanies(counts.Companies)
	snap.Deals = g.generateDeals(snap.Contacts, counts.Deals)

	return snap
}

func (g *Generator) generateRegions() []models.Region {
	regions := make([]models.Region, 0, len(regionTable))
	for _, row := range regionTable {
		regions = append(regions, models.Region{
			ID:                g.newID(),
			Code:              row.Code,
			Name:              row.Name,
			SupervisionPolicy: row.SupervisionPolicy,
			ReviewCadenceDays: row.ReviewCadenceDays,
		})
	}
	return regions
}

func (g *Generator) generateSupervisors(regions []models.Region, count int) []models.Supervisor {
	supervisors := make([]models.Supervisor, 0, count)
	for i := 0; i < count; i++ {
		region := regions[g.rng.Intn(len(regions))]
		firstName := g.fake.FirstName()
		lastName := g.fake.LastName()

		supervisors = append(supervisors, models.Supervisor{
			ID:         g.newID(),
			RegistryID: g.registryID(),
			FirstName:  firstName,
			LastName:   lastName,
			Specialty:  specialties[g.rng.Intn(len(specialties))],
			RegionID:   region.ID,
			Email:      mailboxFor(firstName, lastName, "hospital.org"),
			Phone:      g.fake.PhoneFormatted(),
		})
	}
	return supervisors
}

func (g *Generator) generateWorkers(supervisors []models.Supervisor, regions []models.Region, count int) []models.Worker {
	workers := make([]models.Worker, 0, count)
	for i := 0; i < count; i++ {
		// Supervisor and region are independent draws; the worker's region
		// may legitimately differ from its supervisor's.
		supervisor := supervisors[g.rng.Intn(len(supervisors))]
		region := regions[g.rng.Intn(len(regions))]
		firstName := g.fake.FirstName()
		lastName := g.fake.LastName()

		workers = append(workers, models.Worker{
			ID:           g.newID(),
			RegistryID:   g.registryID(),
			FirstName:    firstName,
			LastName:     lastName,
			WorkerType:   workerTypes[g.rng.Intn(len(workerTypes))],
			SupervisorID: supervisor.ID,
			RegionID:     region.ID,
			Email:        mailboxFor(firstName, lastName, "clinic.org"),
			Phone:        g.fake.PhoneFormatted(),
			HireDate:     g.timeBetween(g.now.AddDate(-5, 0, 0), g.now.AddDate(0, 0, -30)),
		})
	}
	return workers
}

func (g *Generator) generateCases(workers []models.Worker, count int) []models.Case {
	cases := make([]models.Case, 0, count)
	for i := 0; i < count; i++ {
		worker := workers[g.rng.Intn(len(workers))]
		created := g.timeBetween(g.now.AddDate(0, 0, -90), g.now.AddDate(0, 0, -1))

		// 70% open, 20% closed, 10% pending review
		var status string
		var closedAt *time.Time
		switch roll := g.rng.Float64(); {
		case roll < 0.7:
			status = models.CaseStatusOpen
		case roll < 0.9:
			status = models.CaseStatusClosed
			closed := created.AddDate(0, 0, 1+g.rng.Intn(30))
			closedAt = &closed
		default:
			status = models.CaseStatusPendingReview
		}

		cases = append(cases, models.Case{
			ID:         g.newID(),
			WorkerID:   worker.ID,
			PatientRef: g.patientRef(),
			CaseType:   caseTypes[g.rng.Intn(len(caseTypes))],
			Status:     status,
			Priority:   g.weighted([]string{"low", "normal", "high", "urgent"}, []float64{0.1, 0.6, 0.2, 0.1}),
			CreatedAt:  created,
			ClosedAt:   closedAt,
		})
	}
	return cases
}

func (g *Generator) generateReviews(cases []models.Case, workers []models.Worker, count int) []models.Review {
	supervisorByWorker := make(map[uuid.UUID]uuid.UUID, len(workers))
	for _, w := range workers {
		supervisorByWorker[w.ID] = w.SupervisorID
	}

	today := dateOf(g.now)

	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		c := cases[g.rng.Intn(len(cases))]

		// Guard against a broken worker→supervisor chain. Unreachable under
		// the stage order above, but kept in case the stages ever decouple.
		supervisorID, ok := supervisorByWorker[c.WorkerID]
		if !ok {
			continue
		}

		dueDate := dateOf(c.CreatedAt).AddDate(0, 0, 7+g.rng.Intn(24))

		var (
			status      string
			completedAt *time.Time
			notes       string
			reviewDate  time.Time
		)
		if dueDate.Before(today) {
			// Past due: mostly completed, the rest overdue.
			if g.rng.Float64() < 0.7 {
				status = models.ReviewStatusCompleted
				completed := dueDate.AddDate(0, 0, -g.rng.Intn(6))
				completedAt = &completed
				notes = g.fake.Sentence(8)
				reviewDate = completed
			} else {
				status = models.ReviewStatusOverdue
				reviewDate = dueDate
			}
		} else {
			status = models.ReviewStatusPending
			reviewDate = dueDate
		}

		reviews = append(reviews, models.Review{
			ID:           g.newID(),
			CaseID:       c.ID,
			SupervisorID: supervisorID,
			ReviewDate:   reviewDate,
			Status:       status,
			Notes:        notes,
			DueDate:      dueDate,
			CompletedAt:  completedAt,
		})
	}
	return reviews
}

func (g *Generator) generateContacts(count int) []CRMObject {
	contacts := make([]CRMObject, 0, count)
	for i := 0; i < count; i++ {
		id := strconv.Itoa(i + 1)
		firstName := g.fake.FirstName()
		lastName := g.fake.LastName()
		created := g.timeBetween(g.now.AddDate(-1, 0, 0), g.now)
		updated := created.AddDate(0, 0, g.rng.Intn(31))

		contacts = append(contacts, CRMObject{
			ID: id,
			Properties: map[string]string{
				"firstname":        firstName,
				"lastname":         lastName,
				"email":            mailboxFor(firstName, lastName, g.fake.DomainName()),
				"phone":            g.fake.PhoneFormatted(),
				"company":          g.fake.Company(),
				"jobtitle":         jobTitles[g.rng.Intn(len(jobTitles))],
				"lifecyclestage":   lifecycleStages[g.rng.Intn(len(lifecycleStages))],
				"hs_lead_status":   leadStatuses[g.rng.Intn(len(leadStatuses))],
				"createdate":       created.Format(iso8601Millis),
				"lastmodifieddate": updated.Format(iso8601Millis),
				"hs_object_id":     id,
			},
			CreatedAt: created.Format(iso8601Millis),
			UpdatedAt: updated.Format(iso8601Millis),
			Archived:  false,
		})
	}
	return contacts
}

func (g *Generator) generateCompanies(count int) []CRMObject {
	companies := make([]CRMObject, 0, count)
	for i := 0; i < count; i++ {
		id := strconv.Itoa(i + 1)
		created := g.timeBetween(g.now.AddDate(-1, 0, 0), g.now)
		updated := created.AddDate(0, 0, g.rng.Intn(31))

		companies = append(companies, CRMObject{
			ID: id,
			Properties: map[string]string{
				"name":                g.fake.Company() + companySuffixes[g.rng.Intn(len(companySuffixes))],
				"domain":              g.fake.DomainName(),
				"industry":            industries[g.rng.Intn(len(industries))],
				"numberofemployees":   strconv.Itoa(companyHeadcounts[g.rng.Intn(len(companyHeadcounts))]),
				"annualrevenue":       strconv.Itoa(1000000 + g.rng.Intn(99000001)),
				"city":                g.fake.City(),
				"state":               g.fake.StateAbr(),
				"country":             "United States",
				"phone":               g.fake.PhoneFormatted(),
				"createdate":          created.Format(iso8601Millis),
				"hs_lastmodifieddate": updated.Format(iso8601Millis),
				"hs_object_id":        id,
			},
			CreatedAt: created.Format(iso8601Millis),
			UpdatedAt: updated.Format(iso8601Millis),
			Archived:  false,
		})
	}
	return companies
}

func (g *Generator) generateDeals(contacts []CRMObject, count int) []CRMObject {
	deals := make([]CRMObject, 0, count)
	for i := 0; i < count; i++ {
		id := strconv.Itoa(i + 1)
		created := g.timeBetween(g.now.AddDate(0, -6, 0), g.now)
		updated := created.AddDate(0, 0, g.rng.Intn(31))
		stage := dealStages[g.rng.Intn(len(dealStages))]

		closeDate := ""
		if strings.HasPrefix(stage, "closed") {
			closeDate = created.AddDate(0, 0, 90).Format(iso8601Millis)
		}

		// Deals associate to a contact only; the company association list is
		// always empty (documented current behavior).
		contactResults := []AssociationRef{}
		if len(contacts) > 0 {
			contact := contacts[g.rng.Intn(len(contacts))]
			contactResults = append(contactResults, AssociationRef{ID: contact.ID, Type: "deal_to_contact"})
		}

		deals = append(deals, CRMObject{
			ID: id,
			Properties: map[string]string{
				"dealname":            fmt.Sprintf("%s - Provider Supervision Platform", g.fake.Company()),
				"amount":              strconv.Itoa(10000 + g.rng.Intn(490001)),
				"dealstage":           stage,
				"pipeline":            "default",
				"closedate":           closeDate,
				"createdate":          created.Format(iso8601Millis),
				"hs_lastmodifieddate": updated.Format(iso8601Millis),
				"hs_object_id":        id,
			},
			CreatedAt: created.Format(iso8601Millis),
			UpdatedAt: updated.Format(iso8601Millis),
			Archived:  false,
			Associations: map[string]AssociationList{
				"contacts":  {Results: contactResults},
				"companies": {Results: []AssociationRef{}},
			},
		})
	}
	return deals
}

// newID draws a uuid from the generator's own random stream so repeated runs
// with the same seed produce identical ids.
func (g *Generator) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	return id
}

// registryID returns a 10-digit business identifier whose first digit is 1
// or 2.
func (g *Generator) registryID() string {
	var b strings.Builder
	b.WriteByte(byte('1' + g.rng.Intn(2)))
	for i := 0; i < 9; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return b.String()
}

func (g *Generator) patientRef() string {
	return fmt.Sprintf("MRN%d", 100000+g.rng.Intn(900000))
}

// timeBetween draws a uniform timestamp in [from, to) with second
// granularity.
func (g *Generator) timeBetween(from, to time.Time) time.Time {
	seconds := int64(to.Sub(from) / time.Second)
	if seconds <= 0 {
		return from
	}
	return from.Add(time.Duration(g.rng.Int63n(seconds)) * time.Second)
}

// weighted draws one value using cumulative probability weights.
func (g *Generator) weighted(values []string, weights []float64) string {
	roll := g.rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// dateOf truncates a timestamp to midnight UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mailboxFor(firstName, lastName, domain string) string {
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@" + domain
}
