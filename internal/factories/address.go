package factories

import "fmt"

var customerNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Christopher", "Karen", "Charles", "Nancy", "Daniel", "Lisa",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kevin", "Dorothy", "Brian", "Carol", "George", "Amanda", "Edward", "Melissa",
}

var streetNames = []string{
	"Oak", "Maple", "Cedar", "Pine", "Elm", "Birch", "Walnut", "Cherry", "Willow",
	"Main", "Park", "Lake", "Hill", "River", "Valley", "Forest", "Sunset", "Spring",
	"Washington", "Lincoln", "Jefferson", "Madison", "Monroe", "Jackson", "Adams",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Way", "Pl", "Rd"}

func pick(rng Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// streetAddress draws a house number in [100, 9099] and a street.
func streetAddress(rng Rand) string {
	house := 100 + rng.Intn(9000)
	return fmt.Sprintf("%d %s %s", house, pick(rng, streetNames), pick(rng, streetSuffixes))
}
