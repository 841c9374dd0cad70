package board

import "sync"

// Riverton is the built-in 120-node city map. Start pools are disjoint
// between roles; reveal rounds and the round limit follow the standard
// 16-round game.
func Riverton() *Map {
	rivertonOnce.Do(func() {
		g, err := NewGraph(rivertonNodes, rivertonEdges)
		if err != nil {
			panic("riverton map data: " + err.Error())
		}
		rivertonMap = &Map{
			ID:             "riverton",
			Graph:          g,
			FugitiveStarts: []NodeID{3, 20, 32, 43, 52, 60, 77, 81, 90, 98, 105, 111},
			TrackerStarts:  []NodeID{1, 4, 12, 16, 19, 21, 25, 37, 40, 45, 47, 57, 59, 61, 64, 69, 71, 80, 86, 93, 95, 103, 110, 116, 118, 120},
			RevealRounds:   []int{3, 8, 13, 16},
			RoundLimit:     16,
		}
	})
	return rivertonMap
}

var (
	rivertonOnce sync.Once
	rivertonMap  *Map
)

var rivertonNodes = []Node{
	{ID: 1, Name: "Lakeside View"},
	{ID: 2, Name: "Hilltop Observatory"},
	{ID: 3, Name: "Green Valley"},
	{ID: 4, Name: "Northwood Creek"},
	{ID: 5, Name: "Westwood Trail"},
	{ID: 6, Name: "University North"},
	{ID: 7, Name: "Central Park North"},
	{ID: 8, Name: "Highland Avenue"},
	{ID: 9, Name: "Uptown Square"},
	{ID: 10, Name: "North Bridge (West)"},
	{ID: 11, Name: "Eastwood Heights"},
	{ID: 12, Name: "Industrial Gates"},
	{ID: 13, Name: "Factory Overlook"},
	{ID: 14, Name: "Skyline Business Park"},
	{ID: 15, Name: "East Station"},
	{ID: 16, Name: "Cargo Hub"},
	{ID: 17, Name: "North Bridge (East)"},
	{ID: 18, Name: "Power Grid"},
	{ID: 19, Name: "Airport North"},
	{ID: 20, Name: "Westside Market"},
	{ID: 21, Name: "Oakwood District"},
	{ID: 22, Name: "Community Gardens"},
	{ID: 23, Name: "Riverbend Docks"},
	{ID: 24, Name: "Memorial Park"},
	{ID: 25, Name: "Arts Center"},
	{ID: 26, Name: "City College"},
	{ID: 27, Name: "Midtown Plaza"},
	{ID: 28, Name: "Grand Central"},
	{ID: 29, Name: "Library Square"},
	{ID: 30, Name: "The Interchange"},
	{ID: 31, Name: "City Hall"},
	{ID: 32, Name: "Museum of History"},
	{ID: 33, Name: "East Bank Promenade"},
	{ID: 34, Name: "Old Ferry Landing"},
	{ID: 35, Name: "Tech Campus East"},
	{ID: 36, Name: "Hospital Complex"},
	{ID: 37, Name: "Eastside Mall"},
	{ID: 38, Name: "Expressway Exit"},
	{ID: 39, Name: "Waterfront Park (East)"},
	{ID: 40, Name: "The Foundry"},
	{ID: 41, Name: "Logistics South"},
	{ID: 42, Name: "Historic Port"},
	{ID: 43, Name: "Old Town Market"},
	{ID: 44, Name: "South Station"},
	{ID: 45, Name: "Fisherman's Wharf"},
	{ID: 46, Name: "The Marina"},
	{ID: 47, Name: "Lighthouse Point"},
	{ID: 48, Name: "Ocean View"},
	{ID: 49, Name: "South Bridge (West)"},
	{ID: 50, Name: "Financial District"},
	{ID: 51, Name: "Convention Center"},
	{ID: 52, Name: "Theater District"},
	{ID: 53, Name: "Union Square"},
	{ID: 54, Name: "South Ferry Terminal"},
	{ID: 55, Name: "South Bridge (East)"},
	{ID: 56, Name: "Stadium"},
	{ID: 57, Name: "Pleasure Gardens"},
	{ID: 58, Name: "Amusement Pier"},
	{ID: 59, Name: "Palm Resort"},
	{ID: 60, Name: "Sunset Beach"},
	{ID: 61, Name: "The Grand Hotel"},
	{ID: 62, Name: "Tropicana"},
	{ID: 63, Name: "Maple Creek"},
	{ID: 64, Name: "Pine Ridge"},
	{ID: 65, Name: "Lookout Mountain"},
	{ID: 66, Name: "Whispering Woods"},
	{ID: 67, Name: "Academy Halls"},
	{ID: 68, Name: "Civic Fountain"},
	{ID: 69, Name: "Smokestack Alley"},
	{ID: 70, Name: "Ironworks"},
	{ID: 71, Name: "East Gate"},
	{ID: 72, Name: "Artisan's Row"},
	{ID: 73, Name: "West End Station"},
	{ID: 74, Name: "Riverside West Apts"},
	{ID: 75, Name: "The Boathouse"},
	{ID: 76, Name: "Main Library"},
	{ID: 77, Name: "Courthouse"},
	{ID: 78, Name: "East Clinic"},
	{ID: 79, Name: "St. Mary's Hospital"},
	{ID: 80, Name: "The Emporium"},
	{ID: 81, Name: "Warehouse District"},
	{ID: 82, Name: "Shipping Depot"},
	{ID: 83, Name: "Riverside East Apts"},
	{ID: 84, Name: "Maritime Museum"},
	{ID: 85, Name: "South Port"},
	{ID: 86, Name: "Beach Trail"},
	{ID: 87, Name: "Cove Market"},
	{ID: 88, Name: "Capital Theater"},
	{ID: 89, Name: "Bankers Tower"},
	{ID: 90, Name: "Central Station"},
	{ID: 91, Name: "Castle Hill"},
	{ID: 92, Name: "Sports Arena"},
	{ID: 93, Name: "The Midway"},
	{ID: 94, Name: "Boardwalk Shops"},
	{ID: 95, Name: "Paradise Hotel"},
	{ID: 96, Name: "Sunken Gardens"},
	{ID: 97, Name: "Botanic Park"},
	{ID: 98, Name: "The Zoo"},
	{ID: 99, Name: "Bayview Ferry"},
	{ID: 100, Name: "South Inlet"},
	{ID: 101, Name: "Old Mill Crossing"},
	{ID: 102, Name: "Founders Bridge"},
	{ID: 103, Name: "Steelworks"},
	{ID: 104, Name: "Newtown Station"},
	{ID: 105, Name: "Western Promenade"},
	{ID: 106, Name: "Central Exchange"},
	{ID: 107, Name: "Regency Hotel"},
	{ID: 108, Name: "Exhibition Halls"},
	{ID: 109, Name: "Victory Park"},
	{ID: 110, Name: "The Esplanade"},
	{ID: 111, Name: "Sunny Isles"},
	{ID: 112, Name: "West Docks"},
	{ID: 113, Name: "East Docks"},
	{ID: 114, Name: "North Pier"},
	{ID: 115, Name: "South Pier"},
	{ID: 116, Name: "Hillside Houses"},
	{ID: 117, Name: "Ridgeview Apts"},
	{ID: 118, Name: "Eastend Suburbs"},
	{ID: 119, Name: "South Shore Apts"},
	{ID: 120, Name: "Bayfront Condos"},
}

var rivertonEdges = []Edge{
	{From: 1, To: 2, Via: Auto},
	{From: 1, To: 3, Via: Auto},
	{From: 1, To: 65, Via: Auto},
	{From: 2, To: 3, Via: Auto},
	{From: 2, To: 4, Via: Auto},
	{From: 2, To: 63, Via: Auto},
	{From: 3, To: 5, Via: Auto},
	{From: 3, To: 101, Via: Auto},
	{From: 4, To: 6, Via: Auto},
	{From: 4, To: 64, Via: Auto},
	{From: 5, To: 20, Via: Auto},
	{From: 5, To: 66, Via: Auto},
	{From: 5, To: 72, Via: Auto},
	{From: 63, To: 4, Via: Auto},
	{From: 63, To: 6, Via: Auto},
	{From: 63, To: 117, Via: Auto},
	{From: 116, To: 1, Via: Auto},
	{From: 116, To: 2, Via: Auto},
	{From: 116, To: 64, Via: Auto},
	{From: 65, To: 3, Via: Auto},
	{From: 65, To: 66, Via: Auto},
	{From: 66, To: 21, Via: Auto},
	{From: 66, To: 105, Via: Auto},
	{From: 101, To: 20, Via: Auto},
	{From: 101, To: 117, Via: Auto},
	{From: 117, To: 24, Via: Auto},
	{From: 117, To: 8, Via: Auto},
	{From: 6, To: 7, Via: Auto},
	{From: 6, To: 8, Via: Auto},
	{From: 7, To: 9, Via: Auto},
	{From: 7, To: 68, Via: Auto},
	{From: 8, To: 10, Via: Auto},
	{From: 8, To: 27, Via: Auto},
	{From: 9, To: 11, Via: Auto},
	{From: 9, To: 102, Via: Auto},
	{From: 10, To: 24, Via: Auto},
	{From: 10, To: 114, Via: Auto},
	{From: 67, To: 4, Via: Auto},
	{From: 67, To: 6, Via: Auto},
	{From: 68, To: 7, Via: Auto},
	{From: 68, To: 11, Via: Auto},
	{From: 102, To: 27, Via: Auto},
	{From: 102, To: 28, Via: Auto},
	{From: 11, To: 12, Via: Auto},
	{From: 11, To: 14, Via: Auto},
	{From: 12, To: 13, Via: Auto},
	{From: 12, To: 69, Via: Auto},
	{From: 13, To: 15, Via: Auto},
	{From: 13, To: 70, Via: Auto},
	{From: 14, To: 17, Via: Auto},
	{From: 14, To: 18, Via: Auto},
	{From: 15, To: 16, Via: Auto},
	{From: 15, To: 19, Via: Auto},
	{From: 16, To: 37, Via: Auto},
	{From: 16, To: 71, Via: Auto},
	{From: 17, To: 39, Via: Auto},
	{From: 17, To: 28, Via: Auto},
	{From: 18, To: 36, Via: Auto},
	{From: 18, To: 79, Via: Auto},
	{From: 19, To: 71, Via: Auto},
	{From: 69, To: 78, Via: Auto},
	{From: 70, To: 103, Via: Auto},
	{From: 71, To: 16, Via: Auto},
	{From: 103, To: 13, Via: Auto},
	{From: 103, To: 15, Via: Auto},
	{From: 20, To: 21, Via: Auto},
	{From: 20, To: 24, Via: Auto},
	{From: 21, To: 22, Via: Auto},
	{From: 21, To: 105, Via: Auto},
	{From: 22, To: 25, Via: Auto},
	{From: 22, To: 26, Via: Auto},
	{From: 23, To: 24, Via: Auto},
	{From: 23, To: 114, Via: Auto},
	{From: 24, To: 114, Via: Auto},
	{From: 24, To: 27, Via: Auto},
	{From: 25, To: 45, Via: Auto},
	{From: 25, To: 43, Via: Auto},
	{From: 26, To: 32, Via: Auto},
	{From: 26, To: 43, Via: Auto},
	{From: 72, To: 5, Via: Auto},
	{From: 72, To: 22, Via: Auto},
	{From: 73, To: 23, Via: Auto},
	{From: 73, To: 112, Via: Auto},
	{From: 74, To: 26, Via: Auto},
	{From: 74, To: 75, Via: Auto},
	{From: 75, To: 42, Via: Auto},
	{From: 75, To: 84, Via: Auto},
	{From: 105, To: 25, Via: Auto},
	{From: 112, To: 74, Via: Auto},
	{From: 112, To: 26, Via: Auto},
	{From: 114, To: 27, Via: Auto},
	{From: 27, To: 28, Via: Auto},
	{From: 27, To: 29, Via: Auto},
	{From: 28, To: 33, Via: Auto},
	{From: 28, To: 39, Via: Auto},
	{From: 29, To: 30, Via: Auto},
	{From: 29, To: 31, Via: Auto},
	{From: 30, To: 34, Via: Auto},
	{From: 30, To: 51, Via: Auto},
	{From: 31, To: 32, Via: Auto},
	{From: 31, To: 50, Via: Auto},
	{From: 32, To: 42, Via: Auto},
	{From: 32, To: 77, Via: Auto},
	{From: 76, To: 29, Via: Auto},
	{From: 76, To: 33, Via: Auto},
	{From: 77, To: 31, Via: Auto},
	{From: 77, To: 43, Via: Auto},
	{From: 106, To: 31, Via: Auto},
	{From: 106, To: 54, Via: Auto},
	{From: 114, To: 27, Via: Auto},
	{From: 33, To: 39, Via: Auto},
	{From: 33, To: 76, Via: Auto},
	{From: 34, To: 83, Via: Auto},
	{From: 34, To: 115, Via: Auto},
	{From: 35, To: 36, Via: Auto},
	{From: 35, To: 78, Via: Auto},
	{From: 36, To: 37, Via: Auto},
	{From: 36, To: 38, Via: Auto},
	{From: 37, To: 40, Via: Auto},
	{From: 37, To: 80, Via: Auto},
	{From: 38, To: 41, Via: Auto},
	{From: 38, To: 82, Via: Auto},
	{From: 39, To: 113, Via: Auto},
	{From: 40, To: 81, Via: Auto},
	{From: 41, To: 81, Via: Auto},
	{From: 41, To: 118, Via: Auto},
	{From: 78, To: 79, Via: Auto},
	{From: 79, To: 37, Via: Auto},
	{From: 80, To: 40, Via: Auto},
	{From: 82, To: 108, Via: Auto},
	{From: 82, To: 110, Via: Auto},
	{From: 83, To: 113, Via: Auto},
	{From: 104, To: 37, Via: Auto},
	{From: 104, To: 41, Via: Auto},
	{From: 113, To: 35, Via: Auto},
	{From: 118, To: 59, Via: Auto},
	{From: 118, To: 111, Via: Auto},
	{From: 42, To: 43, Via: Auto},
	{From: 42, To: 49, Via: Auto},
	{From: 43, To: 44, Via: Auto},
	{From: 43, To: 84, Via: Auto},
	{From: 44, To: 46, Via: Auto},
	{From: 44, To: 85, Via: Auto},
	{From: 45, To: 46, Via: Auto},
	{From: 45, To: 86, Via: Auto},
	{From: 46, To: 47, Via: Auto},
	{From: 46, To: 87, Via: Auto},
	{From: 47, To: 48, Via: Auto},
	{From: 48, To: 87, Via: Auto},
	{From: 84, To: 85, Via: Auto},
	{From: 85, To: 88, Via: Auto},
	{From: 85, To: 119, Via: Auto},
	{From: 86, To: 45, Via: Auto},
	{From: 87, To: 48, Via: Auto},
	{From: 119, To: 44, Via: Auto},
	{From: 119, To: 52, Via: Auto},
	{From: 49, To: 88, Via: Auto},
	{From: 49, To: 100, Via: Auto},
	{From: 50, To: 51, Via: Auto},
	{From: 50, To: 89, Via: Auto},
	{From: 51, To: 53, Via: Auto},
	{From: 51, To: 106, Via: Auto},
	{From: 52, To: 53, Via: Auto},
	{From: 52, To: 90, Via: Auto},
	{From: 53, To: 89, Via: Auto},
	{From: 53, To: 107, Via: Auto},
	{From: 54, To: 106, Via: Auto},
	{From: 54, To: 115, Via: Auto},
	{From: 88, To: 107, Via: Auto},
	{From: 89, To: 50, Via: Auto},
	{From: 89, To: 108, Via: Auto},
	{From: 90, To: 91, Via: Auto},
	{From: 91, To: 100, Via: Auto},
	{From: 100, To: 119, Via: Auto},
	{From: 107, To: 90, Via: Auto},
	{From: 55, To: 99, Via: Auto},
	{From: 55, To: 120, Via: Auto},
	{From: 56, To: 57, Via: Auto},
	{From: 56, To: 92, Via: Auto},
	{From: 57, To: 58, Via: Auto},
	{From: 57, To: 109, Via: Auto},
	{From: 58, To: 59, Via: Auto},
	{From: 58, To: 94, Via: Auto},
	{From: 59, To: 95, Via: Auto},
	{From: 59, To: 111, Via: Auto},
	{From: 60, To: 61, Via: Auto},
	{From: 60, To: 96, Via: Auto},
	{From: 61, To: 62, Via: Auto},
	{From: 61, To: 98, Via: Auto},
	{From: 62, To: 97, Via: Auto},
	{From: 62, To: 99, Via: Auto},
	{From: 92, To: 108, Via: Auto},
	{From: 93, To: 57, Via: Auto},
	{From: 93, To: 110, Via: Auto},
	{From: 94, To: 96, Via: Auto},
	{From: 94, To: 118, Via: Auto},
	{From: 95, To: 111, Via: Auto},
	{From: 96, To: 60, Via: Auto},
	{From: 97, To: 120, Via: Auto},
	{From: 98, To: 99, Via: Auto},
	{From: 108, To: 56, Via: Auto},
	{From: 109, To: 93, Via: Auto},
	{From: 110, To: 57, Via: Auto},
	{From: 111, To: 60, Via: Auto},
	{From: 120, To: 58, Via: Auto},

	{From: 1, To: 8, Via: Bus},
	{From: 8, To: 14, Via: Bus},
	{From: 14, To: 35, Via: Bus},
	{From: 35, To: 41, Via: Bus},
	{From: 19, To: 13, Via: Bus},
	{From: 13, To: 18, Via: Bus},
	{From: 18, To: 38, Via: Bus},
	{From: 38, To: 58, Via: Bus},
	{From: 58, To: 60, Via: Bus},
	{From: 65, To: 22, Via: Bus},
	{From: 22, To: 32, Via: Bus},
	{From: 32, To: 50, Via: Bus},
	{From: 50, To: 56, Via: Bus},
	{From: 72, To: 73, Via: Bus},
	{From: 73, To: 85, Via: Bus},
	{From: 85, To: 89, Via: Bus},
	{From: 89, To: 108, Via: Bus},
	{From: 116, To: 101, Via: Bus},
	{From: 101, To: 27, Via: Bus},
	{From: 27, To: 76, Via: Bus},
	{From: 4, To: 10, Via: Bus},
	{From: 10, To: 23, Via: Bus},
	{From: 23, To: 42, Via: Bus},
	{From: 42, To: 49, Via: Bus},
	{From: 9, To: 17, Via: Bus},
	{From: 17, To: 33, Via: Bus},
	{From: 33, To: 54, Via: Bus},
	{From: 54, To: 55, Via: Bus},
	{From: 45, To: 44, Via: Bus},
	{From: 44, To: 52, Via: Bus},
	{From: 52, To: 62, Via: Bus},
	{From: 52, To: 59, Via: Bus},
	{From: 105, To: 84, Via: Bus},
	{From: 84, To: 91, Via: Bus},
	{From: 91, To: 98, Via: Bus},
	{From: 70, To: 80, Via: Bus},
	{From: 80, To: 118, Via: Bus},
	{From: 109, To: 94, Via: Bus},
	{From: 94, To: 96, Via: Bus},

	{From: 2, To: 28, Via: Metro},
	{From: 28, To: 36, Via: Metro},
	{From: 36, To: 56, Via: Metro},
	{From: 56, To: 61, Via: Metro},
	{From: 19, To: 28, Via: Metro},
	{From: 28, To: 51, Via: Metro},
	{From: 51, To: 44, Via: Metro},
	{From: 44, To: 47, Via: Metro},
	{From: 67, To: 9, Via: Metro},
	{From: 9, To: 31, Via: Metro},
	{From: 31, To: 53, Via: Metro},
	{From: 53, To: 90, Via: Metro},
	{From: 105, To: 26, Via: Metro},
	{From: 26, To: 50, Via: Metro},
	{From: 50, To: 108, Via: Metro},
	{From: 108, To: 95, Via: Metro},
	{From: 12, To: 30, Via: Metro},
	{From: 30, To: 40, Via: Metro},
	{From: 40, To: 81, Via: Metro},
	{From: 73, To: 88, Via: Metro},
	{From: 88, To: 97, Via: Metro},
	{From: 20, To: 30, Via: Metro},

	{From: 10, To: 23, Via: Ferry},
	{From: 23, To: 42, Via: Ferry},
	{From: 42, To: 49, Via: Ferry},
	{From: 49, To: 100, Via: Ferry},
	{From: 17, To: 33, Via: Ferry},
	{From: 33, To: 34, Via: Ferry},
	{From: 34, To: 54, Via: Ferry},
	{From: 54, To: 55, Via: Ferry},
	{From: 55, To: 99, Via: Ferry},
}
