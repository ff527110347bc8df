package clock

import "time"

// Service is the time source for everything that stamps saved records.
type Service interface {
	Now() time.Time
}

// SetFn moves a fixed clock to the given instant.
type SetFn func(time.Time)

type fixedService struct {
	now time.Time
}

func (f *fixedService) Now() time.Time {
	return f.now
}

// NewFixedService returns a clock stopped at now. Tests advance it with the
// returned SetFn.
func NewFixedService(now time.Time) (Service, SetFn) {
	service := &fixedService{
		now: now.UTC(),
	}
	return service, func(t time.Time) {
		service.now = t.UTC()
	}
}

func NewFixedServiceNow() (Service, SetFn) {
	return NewFixedService(time.Now())
}

type systemService struct{}

func NewSystemService() Service {
	return systemService{}
}

func (systemService) Now() time.Time {
	return time.Now().UTC()
}
