package command

import (
	"fmt"
	"testing"

	"github.com/labforge/labops/internal/people/domain"
	"github.com/labforge/labops/pkg/auth"
	"github.com/labforge/labops/pkg/health"
)

type fakeRepo struct {
	people map[uint]*domain.Person
	nextID uint
}

func newFakeRepo(people ...*domain.Person) *fakeRepo {
	r := &fakeRepo{people: make(map[uint]*domain.Person), nextID: 1}
	for _, p := range people {
		r.people[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakeRepo) Create(p *domain.Person) error {
	p.ID = r.nextID
	r.nextID++
	r.people[p.ID] = p
	return nil
}

func (r *fakeRepo) FindByID(id uint) (*domain.Person, error) {
	p, ok := r.people[id]
	if !ok {
		return nil, fmt.Errorf("person not found")
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) FindByUsername(username string) (*domain.Person, error) {
	for _, p := range r.people {
		if p.Username == username {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("person not found")
}

func (r *fakeRepo) FindByEmail(email string) (*domain.Person, error) {
	for _, p := range r.people {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("person not found")
}

func (r *fakeRepo) FindAll(int, int) ([]domain.Person, error) { return nil, nil }

func (r *fakeRepo) FindByRole(string, int, int) ([]domain.Person, error) { return nil, nil }

func (r *fakeRepo) Update(p *domain.Person) error { r.people[p.ID] = p; return nil }

func (r *fakeRepo) Delete(id uint) error { delete(r.people, id); return nil }

func (r *fakeRepo) Count() (int64, error) { return int64(len(r.people)), nil }

func (r *fakeRepo) CountByRole(string) (int64, error) { return 0, nil }

func TestRegisterPersonDefaultsToResearcher(t *testing.T) {
	repo := newFakeRepo()
	handler := NewRegisterPersonHandler(repo)

	person, err := handler.Handle(RegisterPersonCommand{
		Username: "mchen",
		Email:    "mchen@lab.example.org",
		Password: "hunter22",
		FullName: "Mei Chen",
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if person.Role != health.RoleResearcher {
		t.Errorf("role = %q, want Researcher", person.Role)
	}
	if !person.IsActive {
		t.Error("new person should be active")
	}
	if person.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(person.Password, "hunter22") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterPersonRejectsUnknownRole(t *testing.T) {
	handler := NewRegisterPersonHandler(newFakeRepo())

	_, err := handler.Handle(RegisterPersonCommand{
		Username: "jdoe",
		Email:    "jdoe@lab.example.org",
		Password: "hunter22",
		FullName: "Jordan Doe",
		Role:     "Postdoc",
	})
	if err == nil {
		t.Error("expected error for a role outside the lab role set")
	}
}

func TestRegisterPersonRejectsDuplicates(t *testing.T) {
	repo := newFakeRepo(&domain.Person{
		ID:       1,
		Username: "mchen",
		Email:    "mchen@lab.example.org",
	})
	handler := NewRegisterPersonHandler(repo)

	if _, err := handler.Handle(RegisterPersonCommand{
		Username: "mchen",
		Email:    "other@lab.example.org",
		Password: "hunter22",
		FullName: "Mei Chen",
	}); err == nil {
		t.Error("expected error for duplicate username")
	}

	if _, err := handler.Handle(RegisterPersonCommand{
		Username: "mchen2",
		Email:    "mchen@lab.example.org",
		Password: "hunter22",
		FullName: "Mei Chen",
	}); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestChangeRoleValidatesLabRoles(t *testing.T) {
	repo := newFakeRepo(&domain.Person{ID: 1, Username: "mchen", Role: health.RoleResearcher})
	handler := NewChangeRoleHandler(repo)

	person, err := handler.Handle(ChangeRoleCommand{PersonID: 1, Role: health.RoleLabManager})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if person.Role != health.RoleLabManager {
		t.Errorf("role = %q, want Lab Manager", person.Role)
	}

	// Casing matters: the recipient selector matches roles exactly.
	if _, err := handler.Handle(ChangeRoleCommand{PersonID: 1, Role: "pi"}); err == nil {
		t.Error("expected error for lowercase role")
	}
}

func TestToggleActiveDeactivates(t *testing.T) {
	repo := newFakeRepo(&domain.Person{ID: 1, Username: "mchen", IsActive: true})
	handler := NewToggleActiveHandler(repo)

	person, err := handler.Handle(ToggleActiveCommand{PersonID: 1, IsActive: false})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if person.IsActive {
		t.Error("person still active after deactivation")
	}
}
