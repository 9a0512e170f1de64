package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cyfairmaids/models"
)

func TestStepNames(t *testing.T) {
	assert.Equal(t, "house_profile", StepHouseProfile.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "unknown", Step(99).String())
}

func TestCanProceedBackwardAlwaysAllowed(t *testing.T) {
	sess := &models.WizardSession{Step: int(StepContact)}
	assert.True(t, CanProceed(sess, StepHouseProfile))
	assert.True(t, CanProceed(sess, StepDate))
}

func TestCanProceedRequiresHouseProfile(t *testing.T) {
	sess := &models.WizardSession{Step: int(StepHouseProfile)}
	assert.False(t, CanProceed(sess, StepRooms))

	sess.HouseSize = "1500-2000"
	assert.False(t, CanProceed(sess, StepRooms))

	sess.Frequency = "weekly"
	assert.True(t, CanProceed(sess, StepRooms))
}

func TestCanProceedRoomsAndAddOnsOptional(t *testing.T) {
	sess := &models.WizardSession{
		Step:      int(StepRooms),
		HouseSize: "1500-2000",
		Frequency: "weekly",
	}
	assert.True(t, CanProceed(sess, StepAddOns))

	sess.Step = int(StepAddOns)
	assert.True(t, CanProceed(sess, StepDate))
}

func TestCanProceedTimeSlotRequiresDate(t *testing.T) {
	sess := &models.WizardSession{Step: int(StepDate)}
	assert.False(t, CanProceed(sess, StepTimeSlot))

	sess.SelectedDate = "2026-09-15"
	assert.True(t, CanProceed(sess, StepTimeSlot))
}

func TestCanProceedContactRequiresSlot(t *testing.T) {
	sess := &models.WizardSession{
		Step:         int(StepTimeSlot),
		SelectedDate: "2026-09-15",
	}
	assert.False(t, CanProceed(sess, StepContact))

	sess.SelectedTimeSlot = "08:00-10:00"
	assert.True(t, CanProceed(sess, StepContact))
}

func TestCanProceedReviewRequiresContactFields(t *testing.T) {
	sess := &models.WizardSession{Step: int(StepContact)}
	assert.False(t, CanProceed(sess, StepReview))

	sess.Contact = models.ContactInfo{Email: "jo@example.com", FirstName: "Jo"}
	assert.False(t, CanProceed(sess, StepReview))

	sess.Contact.LastName = "Harper"
	assert.True(t, CanProceed(sess, StepReview))
}
