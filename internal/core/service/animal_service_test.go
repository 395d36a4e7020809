package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrocampo/farm-system/internal/core/domain"
	"github.com/agrocampo/farm-system/internal/core/ports"
)

type stubAnimalRepo struct {
	animals map[string]*domain.Animal
	nextID  int

	lastListLimit   int
	lastListOffset  int
	lastSearchTerm  string
	searchRequested bool
}

func newStubAnimalRepo(animals ...*domain.Animal) *stubAnimalRepo {
	r := &stubAnimalRepo{animals: make(map[string]*domain.Animal)}
	for _, a := range animals {
		clone := *a
		r.animals[a.ID] = &clone
	}
	return r
}

func (r *stubAnimalRepo) List(_ context.Context, limit, offset int) ([]*domain.Animal, error) {
	r.lastListLimit, r.lastListOffset = limit, offset
	out := make([]*domain.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAnimalRepo) Search(_ context.Context, term string, limit, offset int) ([]*domain.Animal, error) {
	r.searchRequested = true
	r.lastSearchTerm = term
	r.lastListLimit, r.lastListOffset = limit, offset
	return nil, nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id string) (*domain.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return nil, domain.ErrAnimalNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAnimalRepo) Create(_ context.Context, a *domain.Animal) (*domain.Animal, error) {
	r.nextID++
	clone := *a
	clone.ID = string(rune('0' + r.nextID))
	r.animals[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAnimalRepo) Update(_ context.Context, id string, in ports.AnimalRecordUpdate) error {
	a, ok := r.animals[id]
	if !ok {
		return domain.ErrAnimalNotFound
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.WeightKg != nil {
		a.WeightKg = *in.WeightKg
	}
	return nil
}

func (r *stubAnimalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.animals[id]; !ok {
		return domain.ErrAnimalNotFound
	}
	delete(r.animals, id)
	return nil
}

func (r *stubAnimalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.animals)), nil
}

func (r *stubAnimalRepo) CountByKind(_ context.Context) ([]domain.CountByGroup, error) {
	return nil, nil
}

func (r *stubAnimalRepo) CountByStatus(_ context.Context) ([]domain.CountByGroup, error) {
	return nil, nil
}

func TestAnimalService_Create_DefaultsStatusAndParsesDate(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := NewAnimalService(repo, zerolog.Nop())

	animal, err := svc.Create(context.Background(), ports.CreateAnimalInput{
		Code:      "BOV-0042",
		Kind:      "Bovino",
		BirthDate: "15/03/2022",
		WeightKg:  420.5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if animal.Status != domain.AnimalStatusActive {
		t.Fatalf("expected default status %q, got %q", domain.AnimalStatusActive, animal.Status)
	}
	if animal.BirthDate == nil {
		t.Fatalf("expected parsed birth date")
	}
	want := time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !animal.BirthDate.Equal(want) {
		t.Fatalf("birth date = %v, want %v", animal.BirthDate, want)
	}
}

func TestAnimalService_Create_EmptyDateAllowed(t *testing.T) {
	svc := NewAnimalService(newStubAnimalRepo(), zerolog.Nop())

	animal, err := svc.Create(context.Background(), ports.CreateAnimalInput{Code: "BOV-1", Kind: "Bovino"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if animal.BirthDate != nil {
		t.Fatalf("expected nil birth date")
	}
}

func TestAnimalService_Create_BadDate(t *testing.T) {
	svc := NewAnimalService(newStubAnimalRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateAnimalInput{Code: "BOV-1", BirthDate: "2022-03-15"}); err == nil {
		t.Fatalf("expected error for non dd/mm/yyyy date")
	}
}

func TestAnimalService_List_PaginationClamped(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := NewAnimalService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListAnimalsInput{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastListLimit != defaultListLimit || repo.lastListOffset != 0 {
		t.Fatalf("expected defaults, got limit=%d offset=%d", repo.lastListLimit, repo.lastListOffset)
	}

	if _, err := svc.List(context.Background(), ports.ListAnimalsInput{Limit: 10_000, Offset: -3}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastListLimit != maxListLimit || repo.lastListOffset != 0 {
		t.Fatalf("expected clamped values, got limit=%d offset=%d", repo.lastListLimit, repo.lastListOffset)
	}
}

func TestAnimalService_List_SearchRoutesToSearch(t *testing.T) {
	repo := newStubAnimalRepo()
	svc := NewAnimalService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListAnimalsInput{Search: "nelore"}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !repo.searchRequested || repo.lastSearchTerm != "nelore" {
		t.Fatalf("expected search path with term, got %+v", repo)
	}
}

func TestAnimalService_Update_MissingRecord(t *testing.T) {
	svc := NewAnimalService(newStubAnimalRepo(), zerolog.Nop())

	status := "Vendido"
	err := svc.Update(context.Background(), "ghost", ports.AnimalRecordUpdate{Status: &status})
	if !errors.Is(err, domain.ErrAnimalNotFound) {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}

func TestAnimalService_Delete_MissingRecord(t *testing.T) {
	svc := NewAnimalService(newStubAnimalRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrAnimalNotFound) {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}
