package console

import (
	"context"
)

func (c *Controller) tutorMenu(ctx context.Context) error {
	for {
		items := []string{
			"View all students",
			"View all supervisors",
			"View students by wellbeing score",
			"Log out",
		}

		switch c.prompt.Choice("Senior tutor menu:", items) {
		case 0:
			if err := c.viewAllStudents(ctx); err != nil {
				return err
			}
		case 1:
			if err := c.viewAllSupervisors(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.viewStudentsByWellbeing(ctx); err != nil {
				return err
			}
		case 3:
			return nil
		}
	}
}

func (c *Controller) viewAllStudents(ctx context.Context) error {
	overview, err := c.tutors.StudentsOverview(ctx)
	if err != nil {
		return err
	}

	c.prompt.Header("All Students")

	if len(overview) == 0 {
		c.prompt.Println("No students found in the system.")
		return nil
	}

	c.prompt.Println("ID   | Name                      | Supervisor | Wellbeing | Last Update | Meetings")
	c.prompt.Println("---------------------------------------------------------------------------------")
	for _, row := range overview {
		s := row.Student
		c.prompt.Printf("%-4d | %-25s | %-10d | %-6d/10 | %-11s | %d\n",
			s.StudentID, s.FullName(), s.SupervisorID, s.WellbeingScore,
			formatMaybeDate(s.LastStatusUpdate), row.Meetings)
	}
	return nil
}

func (c *Controller) viewAllSupervisors(ctx context.Context) error {
	overview, err := c.tutors.SupervisorsOverview(ctx)
	if err != nil {
		return err
	}

	c.prompt.Header("All Supervisors")

	if len(overview) == 0 {
		c.prompt.Println("No supervisors found in the system.")
		return nil
	}

	c.prompt.Println("ID  | Name                 | Meetings | Checks | Total | Status")
	c.prompt.Println("----------------------------------------------------------------")
	for _, row := range overview {
		s := row.Supervisor
		status := "Inactive"
		if row.Active {
			status = "Active"
		}
		c.prompt.Printf("%-3d | %-20s | %-8d | %-6d | %-5d | %s\n",
			s.SupervisorID, s.FullName(), s.MeetingsBookedThisMonth,
			s.WellbeingChecksThisMonth, row.Total, status)
	}
	return nil
}

func (c *Controller) viewStudentsByWellbeing(ctx context.Context) error {
	c.prompt.Header("Students by Wellbeing Score")

	minScore, okMin := c.prompt.Int("Enter minimum wellbeing score (0-10)")
	maxScore, okMax := c.prompt.Int("Enter maximum wellbeing score (0-10)")
	if !okMin || !okMax {
		c.prompt.Println("Invalid input - please enter numeric values between 0 and 10.")
		return nil
	}

	students, err := c.tutors.StudentsByWellbeingRange(ctx, minScore, maxScore)
	if err != nil {
		c.prompt.Printf("Could not filter students: %v\n", err)
		return nil
	}

	if len(students) == 0 {
		c.prompt.Println("No students found in the specified wellbeing score range.")
		return nil
	}

	c.prompt.Println("ID   | Name                      | Wellbeing | Last Update")
	c.prompt.Println("------------------------------------------------------------")
	for _, s := range students {
		c.prompt.Printf("%-4d | %-25s | %-6d/10 | %s\n",
			s.StudentID, s.FullName(), s.WellbeingScore, formatMaybeDate(s.LastStatusUpdate))
	}
	return nil
}
