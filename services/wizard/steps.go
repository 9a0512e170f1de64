package wizard

import "cyfairmaids/models"

// Step indexes the wizard's ordered screens. The enumeration is fixed and
// zero-based; navigation only ever moves one step at a time.
type Step int

const (
	StepHouseProfile Step = iota // service type, house size, frequency
	StepRooms                    // rooms & areas, optional metadata
	StepAddOns                   // a-la-carte cart, optional
	StepDate
	StepTimeSlot
	StepContact
	StepReview
)

const lastStep = StepReview

func (s Step) String() string {
	switch s {
	case StepHouseProfile:
		return "house_profile"
	case StepRooms:
		return "rooms"
	case StepAddOns:
		return "add_ons"
	case StepDate:
		return "date"
	case StepTimeSlot:
		return "time_slot"
	case StepContact:
		return "contact"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// CanProceed reports whether the draft satisfies the completeness predicate
// for entering the target step. Moving backwards is never gated.
func CanProceed(sess *models.WizardSession, target Step) bool {
	if target <= Step(sess.Step) {
		return true
	}
	switch target {
	case StepRooms:
		return sess.HouseSize != "" && sess.Frequency != ""
	case StepAddOns, StepDate:
		// Rooms and add-ons are optional.
		return true
	case StepTimeSlot:
		return sess.SelectedDate != ""
	case StepContact:
		return sess.SelectedTimeSlot != ""
	case StepReview:
		c := sess.Contact
		return c.Email != "" && c.FirstName != "" && c.LastName != ""
	default:
		return true
	}
}
