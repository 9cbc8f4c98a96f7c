// internal/app/bootstrap/seed.go
package bootstrap

import (
	"time"

	"github.com/campushub/campushub/internal/domain/models"
)

// Seed data for the in-memory stores. IDs are stable strings so the
// dataset is predictable across restarts; entities created at runtime
// get UUIDs from their stores.

func daysFromNow(d float64) time.Time {
	return time.Now().UTC().Add(time.Duration(d * 24 * float64(time.Hour)))
}

func daysAgo(d float64) time.Time {
	return daysFromNow(-d)
}

func seedBuildings() []models.Building {
	return []models.Building{
		{
			ID:           "building-1",
			Name:         "Main Library",
			Description:  "The primary campus library with multiple study areas and resources.",
			Location:     models.Point{X: 120, Y: 150},
			Occupancy:    342,
			MaxOccupancy: 500,
			Image:        "/library.jpg",
			Floors: []models.Floor{
				{
					ID:   "floor-1-1",
					Name: "Ground Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-1-1-1",
							Name:             "Quiet Study Area",
							Capacity:         50,
							CurrentOccupancy: 32,
							Amenities:        []string{"Power outlets", "Wi-Fi", "Natural lighting", "Individual desks"},
							IsReservable:     false,
							IsAvailable:      true,
						},
						{
							ID:               "space-1-1-2",
							Name:             "Computer Lab",
							Capacity:         30,
							CurrentOccupancy: 25,
							Amenities:        []string{"Computers", "Printing", "Technical support", "Software"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
				{
					ID:   "floor-1-2",
					Name: "First Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-1-2-1",
							Name:             "Group Study Rooms",
							Capacity:         40,
							CurrentOccupancy: 22,
							Amenities:        []string{"Whiteboards", "Display screens", "Soundproofing", "Conference tables"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-1-2-2",
							Name:             "Silent Reading Area",
							Capacity:         60,
							CurrentOccupancy: 45,
							Amenities:        []string{"Comfortable seating", "Reading lamps", "No talking", "Reference books"},
							IsReservable:     false,
							IsAvailable:      true,
						},
					},
				},
			},
		},
		{
			ID:           "building-2",
			Name:         "Science Center",
			Description:  "Modern facility housing science departments with study spaces and laboratories.",
			Location:     models.Point{X: 250, Y: 180},
			Occupancy:    215,
			MaxOccupancy: 350,
			Image:        "/science-center.jpg",
			Floors: []models.Floor{
				{
					ID:   "floor-2-1",
					Name: "Main Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-2-1-1",
							Name:             "Innovation Hub",
							Capacity:         40,
							CurrentOccupancy: 18,
							Amenities:        []string{"3D printers", "Project tables", "Collaboration space", "Technical tools"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-2-1-2",
							Name:             "Research Commons",
							Capacity:         35,
							CurrentOccupancy: 30,
							Amenities:        []string{"Research materials", "Dual monitors", "Reference librarians", "Databases"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
				{
					ID:   "floor-2-2",
					Name: "Second Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-2-2-1",
							Name:             "Quiet Study Lounge",
							Capacity:         50,
							CurrentOccupancy: 32,
							Amenities:        []string{"Lounge seating", "Coffee station", "Plants", "Natural lighting"},
							IsReservable:     false,
							IsAvailable:      true,
						},
						{
							ID:               "space-2-2-2",
							Name:             "Graduate Student Area",
							Capacity:         25,
							CurrentOccupancy: 15,
							Amenities:        []string{"Private cubbies", "Lockers", "Premium seating", "Priority booking"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
			},
		},
		{
			ID:           "building-3",
			Name:         "Student Union",
			Description:  "Hub for student activities, dining, and casual study.",
			Location:     models.Point{X: 180, Y: 220},
			Occupancy:    426,
			MaxOccupancy: 600,
			Image:        "/student-union.jpg",
			Floors: []models.Floor{
				{
					ID:   "floor-3-1",
					Name: "Main Concourse",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-3-1-1",
							Name:             "Café Study Area",
							Capacity:         70,
							CurrentOccupancy: 55,
							Amenities:        []string{"Coffee shop", "Food service", "Casual seating", "Ambient music"},
							IsReservable:     false,
							IsAvailable:      true,
						},
						{
							ID:               "space-3-1-2",
							Name:             "Media Lounge",
							Capacity:         30,
							CurrentOccupancy: 22,
							Amenities:        []string{"Large displays", "Gaming consoles", "Media streaming", "Comfortable seating"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
				{
					ID:   "floor-3-2",
					Name: "Upper Level",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-3-2-1",
							Name:             "Organization Offices",
							Capacity:         40,
							CurrentOccupancy: 25,
							Amenities:        []string{"Meeting rooms", "Office equipment", "Student org resources", "Event planning space"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-3-2-2",
							Name:             "Multipurpose Room",
							Capacity:         100,
							CurrentOccupancy: 0,
							Amenities:        []string{"Configurable furniture", "Presentation equipment", "Sound system", "Event space"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
			},
		},
		{
			ID:           "building-4",
			Name:         "Engineering Building",
			Description:  "State-of-the-art facility for engineering studies and research.",
			Location:     models.Point{X: 300, Y: 150},
			Occupancy:    280,
			MaxOccupancy: 400,
			Image:        "/engineering.jpg",
			Floors: []models.Floor{
				{
					ID:   "floor-4-1",
					Name: "Ground Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-4-1-1",
							Name:             "Maker Space",
							Capacity:         35,
							CurrentOccupancy: 20,
							Amenities:        []string{"Fabrication tools", "Project materials", "Technical support", "Safety equipment"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-4-1-2",
							Name:             "Design Studio",
							Capacity:         40,
							CurrentOccupancy: 28,
							Amenities:        []string{"Drafting tables", "CAD workstations", "Plotting services", "Model building area"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
				{
					ID:   "floor-4-2",
					Name: "Third Floor",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-4-2-1",
							Name:             "Robotics Lab",
							Capacity:         25,
							CurrentOccupancy: 18,
							Amenities:        []string{"Robotics equipment", "Programming stations", "Testing area", "Specialized tools"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-4-2-2",
							Name:             "Collaboration Zone",
							Capacity:         50,
							CurrentOccupancy: 38,
							Amenities:        []string{"Movable furniture", "Writable walls", "Project displays", "Team pods"},
							IsReservable:     false,
							IsAvailable:      true,
						},
					},
				},
			},
		},
		{
			ID:           "building-5",
			Name:         "Arts Center",
			Description:  "Creative spaces for visual and performing arts.",
			Location:     models.Point{X: 150, Y: 280},
			Occupancy:    185,
			MaxOccupancy: 300,
			Image:        "/arts-center.jpg",
			Floors: []models.Floor{
				{
					ID:   "floor-5-1",
					Name: "Main Gallery",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-5-1-1",
							Name:             "Drawing Studio",
							Capacity:         30,
							CurrentOccupancy: 22,
							Amenities:        []string{"Easels", "Natural lighting", "Model platforms", "Material storage"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-5-1-2",
							Name:             "Digital Media Lab",
							Capacity:         25,
							CurrentOccupancy: 20,
							Amenities:        []string{"High-end computers", "Creative software", "Tablets", "Scanning equipment"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
				{
					ID:   "floor-5-2",
					Name: "Performance Level",
					StudySpaces: []models.StudySpace{
						{
							ID:               "space-5-2-1",
							Name:             "Practice Rooms",
							Capacity:         15,
							CurrentOccupancy: 8,
							Amenities:        []string{"Pianos", "Soundproofing", "Music stands", "Recording equipment"},
							IsReservable:     true,
							IsAvailable:      true,
						},
						{
							ID:               "space-5-2-2",
							Name:             "Movement Studio",
							Capacity:         30,
							CurrentOccupancy: 0,
							Amenities:        []string{"Sprung floor", "Mirrors", "Sound system", "Ballet barres"},
							IsReservable:     true,
							IsAvailable:      true,
						},
					},
				},
			},
		},
	}
}

func seedStudyGroups() []models.StudyGroup {
	return []models.StudyGroup{
		{
			ID:                  "group-1",
			Name:                "Calculus II Study Session",
			Description:         "Weekly study group for Calculus II focusing on integration techniques and applications.",
			Subject:             "Mathematics",
			Course:              "MATH 102 - Calculus II",
			DateTime:            daysFromNow(2),
			Location:            "Main Library, Room 203",
			MaxParticipants:     8,
			CurrentParticipants: 5,
			CreatedBy:           "user-2",
			Members:             []string{"user-2", "user-3", "user-4", "user-5", "user-6"},
		},
		{
			ID:                  "group-2",
			Name:                "Organic Chemistry Prep",
			Description:         "Preparation for the upcoming organic chemistry midterm. We'll be focusing on reaction mechanisms.",
			Subject:             "Chemistry",
			Course:              "CHEM 201 - Organic Chemistry",
			DateTime:            daysFromNow(1),
			Location:            "Science Center, Room 105",
			MaxParticipants:     6,
			CurrentParticipants: 4,
			CreatedBy:           "user-7",
			Members:             []string{"user-7", "user-8", "user-9", "user-10"},
		},
		{
			ID:                  "group-3",
			Name:                "Programming Fundamentals",
			Description:         "Group for beginners learning Python programming fundamentals. We help each other with assignments and practice coding problems.",
			Subject:             "Computer Science",
			Course:              "CS 101 - Intro to Programming",
			DateTime:            daysFromNow(3),
			Location:            "Engineering Building, Computer Lab 2",
			MaxParticipants:     10,
			CurrentParticipants: 7,
			CreatedBy:           "user-11",
			Members:             []string{"user-11", "user-12", "user-13", "user-14", "user-15", "user-16", "user-17"},
		},
		{
			ID:                  "group-4",
			Name:                "Art History Review",
			Description:         "Visual analysis practice and discussion of key art movements for the final exam.",
			Subject:             "Art History",
			Course:              "ART 150 - Survey of Western Art",
			DateTime:            daysFromNow(4),
			Location:            "Arts Center, Seminar Room A",
			MaxParticipants:     12,
			CurrentParticipants: 8,
			CreatedBy:           "user-18",
			Members:             []string{"user-18", "user-19", "user-20", "user-21", "user-22", "user-23", "user-24", "user-25"},
		},
		{
			ID:                  "group-5",
			Name:                "Macroeconomics Discussion",
			Description:         "Weekly discussion of macroeconomic principles and current economic events.",
			Subject:             "Economics",
			Course:              "ECON 201 - Principles of Macroeconomics",
			DateTime:            daysFromNow(5),
			Location:            "Business Building, Room 302",
			MaxParticipants:     15,
			CurrentParticipants: 9,
			CreatedBy:           "user-26",
			Members:             []string{"user-26", "user-27", "user-28", "user-29", "user-30", "user-31", "user-32", "user-33", "user-34"},
		},
	}
}

func seedDoubts() []models.Doubt {
	return []models.Doubt{
		{
			ID:          "doubt-1",
			Title:       "Trouble understanding Fourier Transforms",
			Description: "I'm struggling with the concept of Fourier transforms in signal processing. Could someone explain how to approach it intuitively?",
			Subject:     "Electrical Engineering",
			Course:      "EE 303 - Signals and Systems",
			CreatedAt:   daysAgo(2),
			Anonymous:   true,
			Resolved:    false,
			Answers: []models.Answer{
				{
					ID:           "answer-1-1",
					Content:      "Think of Fourier transforms as breaking down a complex signal into its constituent frequencies. It's like decomposing a chord into individual notes. A good resource is 3blue1brown's YouTube video on the topic.",
					CreatedAt:    daysAgo(1),
					CreatedBy:    "user-5",
					IsInstructor: false,
				},
			},
		},
		{
			ID:          "doubt-2",
			Title:       "Help with Shakespearean analysis",
			Description: "I need help identifying themes of power and corruption in Macbeth for my essay. Any insights or textual references would be appreciated.",
			Subject:     "English Literature",
			Course:      "ENG 220 - Shakespeare",
			CreatedAt:   daysAgo(3),
			Anonymous:   true,
			Resolved:    true,
			Answers: []models.Answer{
				{
					ID:           "answer-2-1",
					Content:      "Look at Lady Macbeth's influence over her husband and how power corrupts both of them. Key scenes: the dagger soliloquy, the banquet with Banquo's ghost, and Lady Macbeth's sleepwalking.",
					CreatedAt:    daysAgo(2.5),
					CreatedBy:    "user-8",
					IsInstructor: false,
				},
				{
					ID:           "answer-2-2",
					Content:      "Consider the motif of blood throughout the play as a symbol of guilt and corruption. The quote \"Will all great Neptune's ocean wash this blood clean from my hand?\" is particularly relevant.",
					CreatedAt:    daysAgo(2),
					CreatedBy:    "user-35",
					IsInstructor: true,
				},
			},
		},
		{
			ID:          "doubt-3",
			Title:       "Confused about statistical significance",
			Description: "I'm not fully understanding p-values and when to reject the null hypothesis. Could someone explain in simpler terms?",
			Subject:     "Statistics",
			Course:      "STAT 201 - Introduction to Statistics",
			CreatedAt:   daysAgo(1),
			Anonymous:   true,
			Resolved:    false,
			Answers:     []models.Answer{},
		},
		{
			ID:          "doubt-4",
			Title:       "Need help with stoichiometry calculations",
			Description: "I'm struggling with balancing chemical equations and calculating mole ratios. Could someone provide step-by-step guidance?",
			Subject:     "Chemistry",
			Course:      "CHEM 101 - General Chemistry",
			CreatedAt:   daysAgo(4),
			Anonymous:   true,
			Resolved:    true,
			Answers: []models.Answer{
				{
					ID:           "answer-4-1",
					Content:      "First, balance the equation to ensure the same number of each atom on both sides. Then, convert masses to moles using molar mass. Finally, use the mole ratio from the balanced equation to convert between reactants and products.",
					CreatedAt:    daysAgo(3.5),
					CreatedBy:    "user-12",
					IsInstructor: false,
				},
				{
					ID:           "answer-4-2",
					Content:      "Let me walk through an example: For the reaction 2H₂ + O₂ → 2H₂O, if you have 4g of H₂, how much O₂ do you need? 4g H₂ = 2 moles. The ratio is 2:1, so you need 1 mole of O₂, which is 32g.",
					CreatedAt:    daysAgo(3),
					CreatedBy:    "user-36",
					IsInstructor: true,
				},
			},
		},
		{
			ID:          "doubt-5",
			Title:       "Debugging recursive functions",
			Description: "My recursive function for calculating Fibonacci numbers is causing a stack overflow error. How do I fix this and make it more efficient?",
			Subject:     "Computer Science",
			Course:      "CS 201 - Data Structures",
			CreatedAt:   daysAgo(5),
			Anonymous:   true,
			Resolved:    false,
			Answers: []models.Answer{
				{
					ID:           "answer-5-1",
					Content:      "The classic recursive Fibonacci implementation has exponential time complexity because it recalculates values multiple times. Use memoization (store previously calculated values) or switch to an iterative approach.",
					CreatedAt:    daysAgo(4.5),
					CreatedBy:    "user-15",
					IsInstructor: false,
				},
			},
		},
	}
}

func seedVendors() []models.FoodVendor {
	return []models.FoodVendor{
		{
			ID:           "vendor-1",
			Name:         "Campus Café",
			Description:  "Healthy, fresh options including salads, sandwiches, and smoothies.",
			Image:        "/cafe.jpg",
			Rating:       4.3,
			CuisineType:  "Healthy/Café",
			DeliveryTime: "15-25 min",
			Menu: []models.MenuItem{
				{
					ID:           "item-1-1",
					Name:         "Avocado Toast",
					Description:  "Whole grain toast with smashed avocado, cherry tomatoes, and microgreens",
					Price:        7.99,
					Image:        "/avocado-toast.jpg",
					Category:     "Breakfast",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-1-2",
					Name:         "Greek Yogurt Bowl",
					Description:  "Greek yogurt with honey, granola, and mixed berries",
					Price:        6.49,
					Category:     "Breakfast",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-1-3",
					Name:         "Mediterranean Wrap",
					Description:  "Hummus, falafel, cucumber, tomato, and tzatziki in a whole wheat wrap",
					Price:        8.99,
					Category:     "Lunch",
					IsVegetarian: true,
					IsAvailable:  false,
				},
				{
					ID:           "item-1-4",
					Name:         "Berry Blast Smoothie",
					Description:  "Mixed berries, banana, almond milk, and protein powder",
					Price:        5.99,
					Category:     "Drinks",
					IsVegetarian: true,
					IsAvailable:  true,
				},
			},
		},
		{
			ID:           "vendor-2",
			Name:         "Pizza Palace",
			Description:  "Handcrafted pizzas with artisanal toppings and fresh ingredients.",
			Image:        "/pizza.jpg",
			Rating:       4.5,
			CuisineType:  "Italian",
			DeliveryTime: "20-30 min",
			Menu: []models.MenuItem{
				{
					ID:           "item-2-1",
					Name:         "Margherita Pizza",
					Description:  "Classic pizza with tomato sauce, fresh mozzarella, and basil",
					Price:        12.99,
					Image:        "/margherita.jpg",
					Category:     "Pizza",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-2-2",
					Name:         "Pepperoni Pizza",
					Description:  "Tomato sauce, mozzarella, and pepperoni",
					Price:        14.99,
					Category:     "Pizza",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-2-3",
					Name:         "Garden Vegetable Pizza",
					Description:  "Tomato sauce, mozzarella, bell peppers, onions, mushrooms, and olives",
					Price:        13.99,
					Category:     "Pizza",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-2-4",
					Name:         "Garlic Knots",
					Description:  "Freshly baked knots brushed with garlic butter and herbs",
					Price:        4.99,
					Category:     "Sides",
					IsVegetarian: true,
					IsAvailable:  true,
				},
			},
		},
		{
			ID:           "vendor-3",
			Name:         "Sushi Spot",
			Description:  "Fresh sushi rolls, sashimi, and Japanese specialties.",
			Image:        "/sushi.jpg",
			Rating:       4.7,
			CuisineType:  "Japanese",
			DeliveryTime: "25-35 min",
			Menu: []models.MenuItem{
				{
					ID:           "item-3-1",
					Name:         "California Roll",
					Description:  "Crab, avocado, and cucumber roll with sesame seeds",
					Price:        8.99,
					Image:        "/california-roll.jpg",
					Category:     "Rolls",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-3-2",
					Name:         "Spicy Tuna Roll",
					Description:  "Spicy tuna and cucumber roll with spicy mayo",
					Price:        9.99,
					Category:     "Rolls",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-3-3",
					Name:         "Vegetable Tempura",
					Description:  "Assorted vegetables in a light, crispy batter with tempura sauce",
					Price:        7.99,
					Category:     "Appetizers",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-3-4",
					Name:         "Miso Soup",
					Description:  "Traditional Japanese soup with tofu, seaweed, and green onions",
					Price:        3.99,
					Category:     "Soup",
					IsVegetarian: true,
					IsAvailable:  true,
				},
			},
		},
		{
			ID:           "vendor-4",
			Name:         "Burrito Brothers",
			Description:  "Authentic Mexican burritos, tacos, and bowls with fresh ingredients.",
			Image:        "/mexican.jpg",
			Rating:       4.2,
			CuisineType:  "Mexican",
			DeliveryTime: "15-25 min",
			Menu: []models.MenuItem{
				{
					ID:           "item-4-1",
					Name:         "Chicken Burrito",
					Description:  "Grilled chicken, rice, beans, cheese, pico de gallo, and sour cream in a flour tortilla",
					Price:        9.99,
					Image:        "/chicken-burrito.jpg",
					Category:     "Burritos",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-4-2",
					Name:         "Veggie Bowl",
					Description:  "Rice, beans, grilled vegetables, guacamole, pico de gallo, and cheese",
					Price:        8.99,
					Category:     "Bowls",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-4-3",
					Name:         "Street Tacos",
					Description:  "Three corn tortillas with your choice of meat, onions, cilantro, and salsa",
					Price:        7.99,
					Category:     "Tacos",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-4-4",
					Name:         "Chips & Guacamole",
					Description:  "Freshly made tortilla chips with house-made guacamole",
					Price:        5.99,
					Category:     "Sides",
					IsVegetarian: true,
					IsAvailable:  true,
				},
			},
		},
		{
			ID:           "vendor-5",
			Name:         "Green Bowl",
			Description:  "Nutritious grain bowls, poke, and plant-based options.",
			Image:        "/bowls.jpg",
			Rating:       4.6,
			CuisineType:  "Healthy/Bowls",
			DeliveryTime: "15-25 min",
			Menu: []models.MenuItem{
				{
					ID:           "item-5-1",
					Name:         "Salmon Poke Bowl",
					Description:  "Brown rice, raw salmon, avocado, edamame, cucumber, seaweed, and ponzu sauce",
					Price:        12.99,
					Image:        "/poke-bowl.jpg",
					Category:     "Poke Bowls",
					IsVegetarian: false,
					IsAvailable:  true,
				},
				{
					ID:           "item-5-2",
					Name:         "Buddha Bowl",
					Description:  "Quinoa, roasted sweet potato, chickpeas, kale, tahini dressing, and pumpkin seeds",
					Price:        10.99,
					Category:     "Grain Bowls",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-5-3",
					Name:         "Teriyaki Tofu Bowl",
					Description:  "Brown rice, teriyaki glazed tofu, stir-fried vegetables, and sesame seeds",
					Price:        9.99,
					Category:     "Grain Bowls",
					IsVegetarian: true,
					IsAvailable:  true,
				},
				{
					ID:           "item-5-4",
					Name:         "Matcha Smoothie",
					Description:  "Matcha green tea, banana, spinach, almond milk, and honey",
					Price:        6.49,
					Category:     "Drinks",
					IsVegetarian: true,
					IsAvailable:  true,
				},
			},
		},
	}
}

func seedIncidents() []models.IncidentReport {
	return []models.IncidentReport{
		{
			ID:          "incident-1",
			Type:        "Maintenance",
			Description: "Broken chair in Science Center, Room 203, near the window.",
			Location:    "Science Center, Room 203",
			DateTime:    daysAgo(3),
			Status:      models.IncidentResolved,
			Urgency:     models.UrgencyLow,
			Anonymous:   true,
		},
		{
			ID:          "incident-2",
			Type:        "Safety",
			Description: "Wet floor without caution sign near the main entrance of the Student Union.",
			Location:    "Student Union, Main Entrance",
			DateTime:    daysAgo(1),
			Status:      models.IncidentResolved,
			Urgency:     models.UrgencyMedium,
			Anonymous:   false,
		},
		{
			ID:          "incident-3",
			Type:        "Technology",
			Description: "Projector in Engineering Building, Room 105 is not connecting to laptops.",
			Location:    "Engineering Building, Room 105",
			DateTime:    daysAgo(2),
			Status:      models.IncidentReviewing,
			Urgency:     models.UrgencyMedium,
			Anonymous:   true,
		},
		{
			ID:          "incident-4",
			Type:        "Security",
			Description: "Suspicious person loitering near the bike racks outside the library.",
			Location:    "Main Library, Bike Racks",
			DateTime:    daysAgo(0.5),
			Status:      models.IncidentPending,
			Urgency:     models.UrgencyHigh,
			Anonymous:   true,
		},
		{
			ID:          "incident-5",
			Type:        "Other",
			Description: "Lost and found item (blue backpack) turned in to the Arts Center reception.",
			Location:    "Arts Center, Reception",
			DateTime:    daysAgo(4),
			Status:      models.IncidentResolved,
			Urgency:     models.UrgencyLow,
			Anonymous:   false,
		},
	}
}

func seedAlerts() []models.EmergencyAlert {
	return []models.EmergencyAlert{
		{
			ID:            "alert-2",
			Title:         "Severe Weather Warning",
			Description:   "The National Weather Service has issued a severe thunderstorm warning for our area from 3PM to 7PM today.",
			Type:          models.AlertWeather,
			Severity:      models.SeverityWarning,
			DateTime:      daysAgo(0.1),
			AffectedAreas: []string{"Entire Campus"},
			Instructions:  "Stay indoors if possible. All outdoor events are cancelled. Monitor campus alerts for updates.",
		},
		{
			ID:            "alert-1",
			Title:         "Campus Power Outage",
			Description:   "A power outage is affecting the north side of campus. Maintenance crews are working to restore power.",
			Type:          models.AlertOther,
			Severity:      models.SeverityWarning,
			DateTime:      daysAgo(1),
			AffectedAreas: []string{"Science Center", "Engineering Building", "North Residence Halls"},
			Instructions:  "Classes in affected buildings are temporarily moved online. Check your email for specific instructions from your professors.",
		},
	}
}

func seedBooks() []models.LibraryBook {
	due := daysFromNow(7)

	return []models.LibraryBook{
		{
			ID:          "book-1",
			RFIDTag:     "RFID-1001",
			Title:       "The Quantum Universe Vol. 1",
			Author:      "James Smith",
			ISBN:        "978-1402894626",
			Category:    "Science",
			Location:    "Floor 1, Section A",
			IsAvailable: true,
			CoverImage:  "/book-1.jpg",
		},
		{
			ID:          "book-2",
			RFIDTag:     "RFID-1002",
			Title:       "Calculus Fundamentals Vol. 1",
			Author:      "Maria Johnson",
			ISBN:        "978-3796817191",
			Category:    "Mathematics",
			Location:    "Floor 2, Section A",
			IsAvailable: true,
			CoverImage:  "/book-2.jpg",
		},
		{
			ID:          "book-3",
			RFIDTag:     "RFID-1003",
			Title:       "Algorithms Explained Vol. 1",
			Author:      "John Williams",
			ISBN:        "978-5118423327",
			Category:    "Computer Science",
			Location:    "Floor 2, Section B",
			IsAvailable: true,
			CoverImage:  "/book-3.jpg",
		},
		{
			ID:          "book-4",
			RFIDTag:     "RFID-1004",
			Title:       "Modern Poetry Vol. 1",
			Author:      "Sara Brown",
			ISBN:        "978-2679145803",
			Category:    "Literature",
			Location:    "Floor 3, Section A",
			IsAvailable: false,
			DueDate:     &due,
			CoverImage:  "/book-4.jpg",
		},
		{
			ID:          "book-5",
			RFIDTag:     "RFID-1005",
			Title:       "Ancient Civilizations Vol. 1",
			Author:      "David Jones",
			ISBN:        "978-8841516250",
			Category:    "History",
			Location:    "Floor 3, Section B",
			IsAvailable: true,
			CoverImage:  "/book-5.jpg",
		},
		{
			ID:          "book-6",
			RFIDTag:     "RFID-1006",
			Title:       "Principles of Biology Vol. 2",
			Author:      "Emma Garcia",
			ISBN:        "978-4175982366",
			Category:    "Science",
			Location:    "Floor 1, Section B",
			IsAvailable: true,
			CoverImage:  "/book-6.jpg",
		},
		{
			ID:          "book-7",
			RFIDTag:     "RFID-1007",
			Title:       "Linear Algebra Vol. 2",
			Author:      "Michael Miller",
			ISBN:        "978-6523908741",
			Category:    "Mathematics",
			Location:    "Floor 2, Section A",
			IsAvailable: false,
			DueDate:     &due,
			CoverImage:  "/book-7.jpg",
		},
		{
			ID:          "book-8",
			RFIDTag:     "RFID-1008",
			Title:       "Machine Learning Basics Vol. 2",
			Author:      "Sofia Davis",
			ISBN:        "978-9034187265",
			Category:    "Computer Science",
			Location:    "Floor 2, Section B",
			IsAvailable: true,
			CoverImage:  "/book-8.jpg",
		},
		{
			ID:          "book-9",
			RFIDTag:     "RFID-1009",
			Title:       "Quantum Mechanics for Engineers",
			Author:      "Robert Rodriguez",
			ISBN:        "978-7253614908",
			Category:    "Engineering",
			Location:    "Floor 1, Section A",
			IsAvailable: true,
			CoverImage:  "/book-9.jpg",
		},
		{
			ID:          "book-10",
			RFIDTag:     "RFID-1010",
			Title:       "Shakespeare Analysis Vol. 3",
			Author:      "Olivia Martinez",
			ISBN:        "978-1864095732",
			Category:    "Literature",
			Location:    "Floor 3, Section A",
			IsAvailable: true,
			CoverImage:  "/book-10.jpg",
		},
		{
			ID:          "book-11",
			RFIDTag:     "RFID-1011",
			Title:       "Statistics in Practice Vol. 3",
			Author:      "James Garcia",
			ISBN:        "978-3508274196",
			Category:    "Mathematics",
			Location:    "Floor 2, Section A",
			IsAvailable: true,
			CoverImage:  "/book-11.jpg",
		},
		{
			ID:          "book-12",
			RFIDTag:     "RFID-1012",
			Title:       "The Renaissance Vol. 2",
			Author:      "Maria Smith",
			ISBN:        "978-6092381475",
			Category:    "History",
			Location:    "Floor 3, Section B",
			IsAvailable: true,
			CoverImage:  "/book-12.jpg",
		},
	}
}
