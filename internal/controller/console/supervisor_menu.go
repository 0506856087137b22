package console

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/render"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

func (c *Controller) supervisorMenu(ctx context.Context, user *model.User) error {
	supervisor, err := c.supervisors.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if supervisor == nil {
		c.prompt.Println("No supervisor record found for this account.")
		return nil
	}

	// Еженедельные напоминания показываем сразу после входа
	if c.supervisors.NeedsOfficeHoursUpdate(supervisor) {
		c.prompt.Println("Reminder: your office hours have not been updated for over a week.")
	}
	if c.supervisors.NeedsWellbeingCheck(supervisor) {
		c.prompt.Println("Reminder: you have not recorded a wellbeing check for over a week.")
	}

	for {
		items := []string{
			"View my students",
			"View student details",
			"Book a meeting with a student",
			"View my meetings",
			"Update office hours",
			"Record a wellbeing check",
			"Export week schedule image",
			"Log out",
		}

		switch c.prompt.Choice("Supervisor menu:", items) {
		case 0:
			if err := c.viewStudents(ctx, supervisor); err != nil {
				return err
			}
		case 1:
			if err := c.viewStudentDetails(ctx, supervisor); err != nil {
				return err
			}
		case 2:
			if err := c.bookWithStudent(ctx, supervisor); err != nil {
				return err
			}
		case 3:
			if err := c.manageMeetings(ctx, supervisor.SupervisorID, false); err != nil {
				return err
			}
		case 4:
			if err := c.updateOfficeHours(ctx, supervisor); err != nil {
				return err
			}
		case 5:
			if err := c.recordWellbeingCheck(ctx, supervisor); err != nil {
				return err
			}
		case 6:
			if err := c.exportWeekImage(ctx, supervisor); err != nil {
				return err
			}
		case 7:
			return nil
		}
	}
}

func (c *Controller) viewStudents(ctx context.Context, supervisor *model.Supervisor) error {
	students, err := c.supervisors.Students(ctx, supervisor.SupervisorID)
	if err != nil {
		return err
	}

	c.prompt.Header("My Students")

	if len(students) == 0 {
		c.prompt.Println("You currently have no assigned students.")
		return nil
	}

	c.prompt.Println("Students (sorted by wellbeing score):")
	for _, s := range students {
		c.prompt.Printf("ID: %d | Name: %s | Wellbeing: %d/10\n", s.StudentID, s.FullName(), s.WellbeingScore)
	}
	return nil
}

func (c *Controller) viewStudentDetails(ctx context.Context, supervisor *model.Supervisor) error {
	c.prompt.Header("Student Details")

	id, ok := c.prompt.Int("Enter student ID")
	if !ok {
		c.prompt.Println("Invalid student ID.")
		return nil
	}

	student, err := c.supervisors.StudentDetails(ctx, int64(id))
	if err != nil {
		return err
	}
	if student == nil || student.SupervisorID != supervisor.SupervisorID {
		c.prompt.Println("Student not found.")
		return nil
	}

	c.prompt.Printf("Name: %s\n", student.FullName())
	c.prompt.Printf("Wellbeing score: %d/10\n", student.WellbeingScore)
	c.prompt.Printf("Last status update: %s\n", formatMaybeDate(student.LastStatusUpdate))

	if c.prompt.YesNo("Would you like to book a meeting with this student?") {
		return c.bookMeeting(ctx, student.StudentID, supervisor.SupervisorID)
	}
	return nil
}

func (c *Controller) bookWithStudent(ctx context.Context, supervisor *model.Supervisor) error {
	students, err := c.supervisors.Students(ctx, supervisor.SupervisorID)
	if err != nil {
		return err
	}

	if len(students) == 0 {
		c.prompt.Println("You currently have no assigned students.")
		return nil
	}

	options := make([]string, len(students))
	for i, s := range students {
		options[i] = fmt.Sprintf("ID: %d | Name: %s", s.StudentID, s.FullName())
	}

	student := students[c.prompt.Choice("Select a student to book a meeting with:", options)]
	return c.bookMeeting(ctx, student.StudentID, supervisor.SupervisorID)
}

func (c *Controller) updateOfficeHours(ctx context.Context, supervisor *model.Supervisor) error {
	c.prompt.Header("Update Office Hours")
	c.prompt.Printf("Current office hours: %s\n", supervisor.OfficeHours)
	c.prompt.Println(`Enter two 2-hour weekday blocks between 08:00 and 18:00,`)
	c.prompt.Println(`e.g. "Monday 09:00-11:00,Thursday 13:00-15:00".`)

	text := c.prompt.Line("New office hours")

	spec, err := c.supervisors.UpdateOfficeHours(ctx, supervisor.SupervisorID, text)
	if err != nil {
		c.prompt.Printf("Could not update office hours: %v\n", err)
		return nil
	}

	supervisor.OfficeHours = spec.Format()
	now := time.Now()
	supervisor.LastOfficeHoursUpdate = &now

	c.prompt.Println("Office hours updated successfully!")
	return nil
}

func (c *Controller) recordWellbeingCheck(ctx context.Context, supervisor *model.Supervisor) error {
	if !c.prompt.YesNo("Record a wellbeing check for this week?") {
		return nil
	}

	if err := c.supervisors.RecordWellbeingCheck(ctx, supervisor.SupervisorID); err != nil {
		c.prompt.Printf("Could not record wellbeing check: %v\n", err)
		return nil
	}

	now := time.Now()
	supervisor.LastWellbeingCheck = &now

	c.prompt.Println("Wellbeing check recorded.")
	return nil
}

// exportWeekImage сохраняет PNG с расписанием на ближайшую неделю
func (c *Controller) exportWeekImage(ctx context.Context, supervisor *model.Supervisor) error {
	meetings, err := c.bookings.MeetingsBySupervisor(ctx, supervisor.SupervisorID)
	if err != nil {
		return err
	}

	spec := schedule.ParseSpec(supervisor.OfficeHours)
	png, err := render.WeekImage(spec, meetings, time.Now())
	if err != nil {
		c.prompt.Printf("Could not render the schedule image: %v\n", err)
		return nil
	}

	filename := fmt.Sprintf("schedule_week_%d.png", supervisor.SupervisorID)
	if err := os.WriteFile(filename, png, 0o644); err != nil {
		c.prompt.Printf("Could not save the schedule image: %v\n", err)
		return nil
	}

	c.prompt.Printf("Week schedule saved to %s\n", filename)
	return nil
}
