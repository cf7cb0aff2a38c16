package handler

import (
	"time"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func userJSON(user *model.User) fiber.Map {
	return fiber.Map{
		"id":       user.UserID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
	}
}

// applicationJSON renders one application in the documented wire shape.
// The employee and top-level reviewer annotations only appear on the admin
// listing, where the detail carries the owner identities.
func applicationJSON(d *usecase.ApplicationDetail) fiber.Map {
	app := d.Application
	m := fiber.Map{
		"leave_application_id": app.LeaveApplicationID,
		"employee_id":          app.EmployeeID,
		"leave_type":           app.LeaveType,
		"leave_mode":           app.LeaveMode,
		"start_date":           app.StartDate.Format(dateLayout),
		"end_date":             app.EndDate.Format(dateLayout),
		"reason":               app.Reason,
		"status":               app.Status,
		"application_date":     app.ApplicationDate.Format(time.RFC3339),
		"review":               nil,
	}

	if d.Review != nil {
		review := fiber.Map{
			"review_date": d.Review.ReviewDate.Format(time.RFC3339),
			"comments":    d.Review.Comments,
			"reviewer":    nil,
		}
		if d.Reviewer != nil {
			review["reviewer"] = fiber.Map{
				"id":    d.Reviewer.UserID,
				"email": d.Reviewer.Email,
				"name":  d.Reviewer.Username,
			}
		}
		m["review"] = review
	}

	if d.Employee != nil && d.Owner != nil {
		m["employee"] = fiber.Map{
			"name":       d.Employee.FirstName + " " + d.Employee.LastName,
			"email":      d.Owner.Email,
			"department": d.Employee.Department,
		}
		if d.Reviewer != nil {
			m["reviewer"] = fiber.Map{
				"id":    d.Reviewer.UserID,
				"email": d.Reviewer.Email,
				"name":  d.Reviewer.Username,
			}
		}
	}

	return m
}
