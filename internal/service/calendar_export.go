package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
	"driver-planning-backend/internal/repository"
)

const calendarProductID = "-//driver-planning//planning export//FR"

// CalendarService renders the plannings of a driver as an iCalendar feed
type CalendarService struct {
	planningRepo repository.PlanningRepositoryInterface
	drivers      DriverServiceInterface
	clock        calendar.Clock
	location     *time.Location
}

var _ CalendarServiceInterface = (*CalendarService)(nil)

// NewCalendarService creates a new calendar service. Planning times are read in location.
func NewCalendarService(planningRepo repository.PlanningRepositoryInterface, drivers DriverServiceInterface, clock calendar.Clock, location *time.Location) *CalendarService {
	if location == nil {
		location = time.Local
	}
	return &CalendarService{
		planningRepo: planningRepo,
		drivers:      drivers,
		clock:        clock,
		location:     location,
	}
}

// ExportDriverWeek returns the ICS document of the driver's plannings for the seven days
// starting at from, or at today when from is zero
func (s *CalendarService) ExportDriverWeek(ctx context.Context, driverID uint, from calendar.Date) (string, error) {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return "", err
	}
	if from.IsZero() {
		from = s.clock.Today()
	}
	week := calendar.Week(from)
	plannings, err := s.planningRepo.GetByDriverBetween(ctx, driverID, week[0], week[len(week)-1])
	if err != nil {
		return "", fmt.Errorf("failed to get driver plannings: %w", err)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetName(fmt.Sprintf("Planning %s", driver.Name))

	stamp := time.Now().UTC()
	for i := range plannings {
		s.addEvent(cal, &plannings[i], stamp)
	}
	return cal.Serialize(), nil
}

func (s *CalendarService) addEvent(cal *ical.Calendar, p *models.Planning, stamp time.Time) {
	event := cal.AddEvent(fmt.Sprintf("planning-%d@driver-planning", p.ID))
	event.SetDtStampTime(stamp)

	start := s.at(p.Date, p.StartTime)
	end := s.at(p.Date, p.ReturnTime)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}
	event.SetStartAt(start)
	event.SetEndAt(end)

	summary := p.ClientName
	if summary == "" {
		summary = "Planning"
	}
	event.SetSummary(summary)
	if p.Destination != "" {
		event.SetLocation(p.Destination)
	}

	var description []string
	if p.Note != "" {
		description = append(description, p.Note)
	}
	if p.LongDistance {
		description = append(description, "Long distance")
	}
	if len(description) > 0 {
		event.SetDescription(strings.Join(description, "\n"))
	}
}

// at combines a day and an "HH:MM" clock time; an unreadable time means midnight
func (s *CalendarService) at(d calendar.Date, clock string) time.Time {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return d.In(s.location)
	}
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, s.location)
}
