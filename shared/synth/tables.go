package synth

// Static seed tables. These are fixed reference enumerations, not random
// draws; the generator samples from them but never modifies them.

type regionSeed struct {
	Code              string
	Name              string
	SupervisionPolicy string
	ReviewCadenceDays int
}

var regionTable = []regionSeed{
	{"CA", "California", "Full practice authority after transition period", 30},
	{"TX", "Texas", "Collaborative agreement required", 14},
	{"FL", "Florida", "Physician supervision required", 7},
	{"NY", "New York", "Collaborative agreement with physician", 30},
	{"PA", "Pennsylvania", "Collaborative agreement required", 30},
	{"IL", "Illinois", "Full practice authority", 45},
	{"OH", "Ohio", "Collaborative agreement required", 14},
	{"GA", "Georgia", "Physician delegation required", 7},
	{"NC", "North Carolina", "Supervisory agreement required", 14},
	{"MI", "Michigan", "Collaborative agreement required", 30},
}

var specialties = []string{
	"Internal Medicine",
	"Family Medicine",
	"Emergency Medicine",
	"Cardiology",
	"Pulmonology",
	"Gastroenterology",
	"Neurology",
	"Orthopedics",
	"Psychiatry",
	"Oncology",
}

var caseTypes = []string{
	"Initial Consultation",
	"Follow-up Visit",
	"Medication Management",
	"Chronic Disease Management",
	"Preventive Care",
	"Urgent Care",
	"Post-Surgical Follow-up",
	"Mental Health Assessment",
	"Lab Review",
	"Imaging Review",
}

var workerTypes = []string{"NP", "PA"}

var jobTitles = []string{
	"Healthcare Administrator",
	"Practice Manager",
	"Medical Director",
	"Compliance Officer",
	"IT Director",
	"CFO",
	"CEO",
}

var lifecycleStages = []string{"subscriber", "lead", "marketingqualifiedlead", "customer"}

var leadStatuses = []string{"NEW", "OPEN", "IN_PROGRESS", "QUALIFIED", "UNQUALIFIED"}

var dealStages = []string{
	"appointmentscheduled",
	"qualifiedtobuy",
	"presentationscheduled",
	"decisionmakerboughtin",
	"contractsent",
	"closedwon",
	"closedlost",
}

var industries = []string{
	"Hospital & Health Care",
	"Medical Practice",
	"Health, Wellness and Fitness",
	"Pharmaceuticals",
	"Medical Devices",
	"Biotechnology",
}

var companySuffixes = []string{" Health", " Medical", " Healthcare", ""}

var companyHeadcounts = []int{50, 100, 250, 500, 1000, 5000}
