package models

// MaxRoomCount bounds the numeric room counters on the booking form.
const MaxRoomCount = 6

// RoomSelection describes which areas of the house are in scope. It is
// descriptive metadata carried onto the booking; it does not affect price.
// JSON keys are camelCase to match the client contract.
type RoomSelection struct {
	MasterBedroom      bool `bson:"master_bedroom" json:"masterBedroom"`
	MasterBathroom     bool `bson:"master_bathroom" json:"masterBathroom"`
	OtherBedrooms      int  `bson:"other_bedrooms" json:"otherBedrooms"`
	OtherFullBathrooms int  `bson:"other_full_bathrooms" json:"otherFullBathrooms"`
	HalfBathrooms      int  `bson:"half_bathrooms" json:"halfBathrooms"`
	DiningRoom         bool `bson:"dining_room" json:"diningRoom"`
	Kitchen            bool `bson:"kitchen" json:"kitchen"`
	LivingRoom         bool `bson:"living_room" json:"livingRoom"`
	MediaRoom          bool `bson:"media_room" json:"mediaRoom"`
	GameRoom           bool `bson:"game_room" json:"gameRoom"`
	Office             bool `bson:"office" json:"office"`
}

// CountsInRange reports whether every numeric counter sits in [0, MaxRoomCount].
func (r RoomSelection) CountsInRange() bool {
	for _, n := range []int{r.OtherBedrooms, r.OtherFullBathrooms, r.HalfBathrooms} {
		if n < 0 || n > MaxRoomCount {
			return false
		}
	}
	return true
}
