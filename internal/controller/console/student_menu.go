package console

import (
	"context"
	"fmt"
	"time"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

func (c *Controller) studentMenu(ctx context.Context, user *model.User) error {
	student, err := c.students.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if student == nil {
		c.prompt.Println("No student record found for this account.")
		return nil
	}

	for {
		items := []string{
			"View wellbeing status",
			"Update wellbeing status",
			"Book a meeting",
			"View my meetings",
			"Log out",
		}

		switch c.prompt.Choice("Student menu:", items) {
		case 0:
			if err := c.viewWellbeing(ctx, student); err != nil {
				return err
			}
		case 1:
			if err := c.updateWellbeing(ctx, student); err != nil {
				return err
			}
		case 2:
			if err := c.bookMeeting(ctx, student.StudentID, student.SupervisorID); err != nil {
				return err
			}
		case 3:
			if err := c.manageMeetings(ctx, student.StudentID, true); err != nil {
				return err
			}
		case 4:
			return nil
		}
	}
}

func (c *Controller) viewWellbeing(ctx context.Context, student *model.Student) error {
	c.prompt.Header("Student Wellbeing Status")
	c.prompt.Printf("Student: %s\n", student.FullName())
	c.prompt.Printf("Current wellbeing score: %d/10\n", student.WellbeingScore)
	c.prompt.Printf("Last updated: %s\n", formatMaybeDate(student.LastStatusUpdate))

	if c.prompt.YesNo("Would you like to update your wellbeing score now?") {
		return c.updateWellbeing(ctx, student)
	}
	return nil
}

func (c *Controller) updateWellbeing(ctx context.Context, student *model.Student) error {
	c.prompt.Header("Update Wellbeing Status")

	score, ok := c.prompt.Int("Please enter your new wellbeing score (0-10)")
	if !ok {
		c.prompt.Println("Invalid input - score must be a number between 0 and 10.")
		return nil
	}

	err := c.students.UpdateWellbeing(ctx, student.StudentID, score)
	if err != nil {
		c.prompt.Printf("Could not update wellbeing: %v\n", err)
		return nil
	}

	student.WellbeingScore = score
	now := time.Now()
	student.LastStatusUpdate = &now

	c.prompt.Println("Wellbeing status updated successfully!")
	return nil
}

// bookMeeting проводит через выбор дня и слота и бронирует встречу
func (c *Controller) bookMeeting(ctx context.Context, studentID, supervisorID int64) error {
	slot, ok, err := c.pickSlot(ctx, supervisorID)
	if err != nil || !ok {
		return err
	}

	notes := c.prompt.Line("Add meeting notes (optional)")

	c.prompt.Header("Meeting Confirmation")
	c.prompt.Printf("Date: %s\n", slot.Start.Format("Monday 02 Jan"))
	c.prompt.Printf("Time: %s - %s\n", slot.Start.Format("15:04"), slot.End.Format("15:04"))

	if !c.prompt.YesNo("Confirm booking this meeting?") {
		c.prompt.Println("Meeting booking was cancelled.")
		return nil
	}

	meeting, verdict, err := c.bookings.Book(ctx, studentID, supervisorID, slot, notes)
	if err != nil {
		return err
	}
	if !verdict.OK {
		c.prompt.Printf("Could not book the meeting: %s\n", verdict.Reason)
		return nil
	}

	c.prompt.Printf("Meeting booked for %s %s - %s (reference %s)\n",
		slot.Start.Format("Monday 02 Jan"),
		slot.Start.Format("15:04"),
		slot.End.Format("15:04"),
		meeting.Reference,
	)
	return nil
}

// pickSlot показывает открытые дни и слоты, false — бронировать нечего
// или пользователь передумал
func (c *Controller) pickSlot(ctx context.Context, supervisorID int64) (schedule.Slot, bool, error) {
	days, err := c.bookings.AvailableDays(ctx, supervisorID)
	if err != nil {
		return schedule.Slot{}, false, err
	}

	if len(days) == 0 {
		c.prompt.Println("No available meeting slots in the next 2 weeks.")
		return schedule.Slot{}, false, nil
	}

	dayOptions := make([]string, len(days))
	for i, day := range days {
		dayOptions[i] = day.Date.Format("Mon 02 Jan")
	}
	day := days[c.prompt.Choice("Choose a day with office hours:", dayOptions)]

	slotOptions := make([]string, len(day.Slots))
	for i, slot := range day.Slots {
		slotOptions[i] = fmt.Sprintf("%s - %s", slot.Start.Format("15:04"), slot.End.Format("15:04"))
	}
	slot := day.Slots[c.prompt.Choice("Choose a meeting slot:", slotOptions)]

	return slot, true, nil
}

// manageMeetings показывает встречи и предлагает отмену или перенос
func (c *Controller) manageMeetings(ctx context.Context, ownerID int64, byStudent bool) error {
	var (
		meetings []*model.Meeting
		err      error
	)
	if byStudent {
		meetings, err = c.bookings.MeetingsByStudent(ctx, ownerID)
	} else {
		meetings, err = c.bookings.MeetingsBySupervisor(ctx, ownerID)
	}
	if err != nil {
		return err
	}

	c.prompt.Header("My Meetings")

	if len(meetings) == 0 {
		c.prompt.Println("You have no meetings booked.")
		return nil
	}

	options := make([]string, 0, len(meetings)+1)
	for _, m := range meetings {
		options = append(options, formatMeeting(m))
	}
	options = append(options, "Return to menu")

	choice := c.prompt.Choice("Select a meeting to manage:", options)
	if choice == len(meetings) {
		return nil
	}
	selected := meetings[choice]

	switch c.prompt.Choice("Manage meeting:", []string{"Cancel meeting", "Reschedule meeting", "Return to menu"}) {
	case 0:
		if !c.prompt.YesNo("Are you sure you want to cancel this meeting?") {
			c.prompt.Println("Meeting cancellation aborted.")
			return nil
		}
		if err := c.bookings.Cancel(ctx, selected.ID); err != nil {
			return err
		}
		c.prompt.Println("Meeting cancelled successfully.")

	case 1:
		c.prompt.Header("Reschedule Meeting")
		c.prompt.Printf("Your current meeting is on %s from %s to %s.\n",
			selected.MeetingDate.Format("Monday 02 Jan"),
			selected.StartTime, selected.EndTime)

		if !c.prompt.YesNo("Would you like to find a new time?") {
			c.prompt.Println("Reschedule cancelled.")
			return nil
		}

		slot, ok, err := c.pickSlot(ctx, selected.SupervisorID)
		if err != nil || !ok {
			return err
		}

		_, verdict, err := c.bookings.Reschedule(ctx, selected.ID, slot, selected.Notes)
		if err != nil {
			return err
		}
		if !verdict.OK {
			c.prompt.Printf("Could not reschedule: %s\n", verdict.Reason)
			return nil
		}
		c.prompt.Println("Meeting rescheduled successfully.")
	}

	return nil
}

func formatMeeting(m *model.Meeting) string {
	notes := m.Notes
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf("%s | %s-%s | Notes: %s",
		m.MeetingDate.Format("Mon 02 Jan"), m.StartTime, m.EndTime, notes)
}

func formatMaybeDate(t *time.Time) string {
	if t == nil {
		return "No record"
	}
	return t.Format("02 Jan 2006")
}
