package repository

import "github.com/mergington/activities/internal/domain/model"

// SeedActivity pairs a catalog name with its record; used for ordered seeding.
type SeedActivity struct {
	Name     string
	Activity model.Activity
}

// DefaultCatalog returns the school's standard extracurricular catalog with
// its pre-registered participants. The catalog is fixed for the life of the
// process; only rosters change at runtime.
func DefaultCatalog() []SeedActivity {
	return []SeedActivity{
		{
			Name: "Chess Club",
			Activity: model.Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
		{
			Name: "Programming Class",
			Activity: model.Activity{
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
		},
		{
			Name: "Gym Class",
			Activity: model.Activity{
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
		{
			Name: "Basketball Team",
			Activity: model.Activity{
				Description:     "Competitive basketball training and games",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"alex@mergington.edu", "james@mergington.edu"},
			},
		},
		{
			Name: "Tennis Club",
			Activity: model.Activity{
				Description:     "Tennis lessons and friendly matches",
				Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
				MaxParticipants: 10,
				Participants:    []string{"lucas@mergington.edu"},
			},
		},
		{
			Name: "Drama Club",
			Activity: model.Activity{
				Description:     "Acting, stagecraft, and the spring theater production",
				Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 25,
				Participants:    []string{},
			},
		},
		{
			Name: "Art Club",
			Activity: model.Activity{
				Description:     "Drawing, painting, and mixed-media projects",
				Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 15,
				Participants:    []string{"amelia@mergington.edu"},
			},
		},
		{
			Name: "Math Club",
			Activity: model.Activity{
				Description:     "Problem solving and math competition preparation",
				Schedule:        "Tuesdays, 7:15 AM - 8:00 AM",
				MaxParticipants: 10,
				Participants:    []string{"william@mergington.edu"},
			},
		},
		{
			Name: "Debate Team",
			Activity: model.Activity{
				Description:     "Research, argumentation, and regional debate meets",
				Schedule:        "Fridays, 4:00 PM - 5:30 PM",
				MaxParticipants: 12,
				Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
			},
		},
	}
}
