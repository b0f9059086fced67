package domain

// Trip is one planner-produced sub-route: an ordered sequence of logical
// stop node ids and, in parallel, the amount of gold to pick up at each.
// Stops and Pickups always have equal length of at least one.
type Trip struct {
	Stops   []int
	Pickups []float64
}

// Solution is the planner's output: zero or more trips to run in order.
// An empty solution means the planner found nothing usable.
type Solution struct {
	Trips []Trip
}
