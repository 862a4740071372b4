//go:build !integration

package vehicle

import (
	"context"
	"errors"
	"testing"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

type fakeVehicleRepo struct {
	vehicles map[uint64]domain.Vehicle
	nextID   uint64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[uint64]domain.Vehicle{}, nextID: 1}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) error {
	v.ID = f.nextID
	f.nextID++
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uint64) (domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return domain.Vehicle{}, errors.New("vehicle not found")
	}
	return v, nil
}

func (f *fakeVehicleRepo) FindAll(_ context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) FindByBodyType(_ context.Context, bodyType string) ([]domain.Vehicle, error) {
	out := []domain.Vehicle{}
	for _, v := range f.vehicles {
		if v.BodyType == bodyType {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if _, ok := f.vehicles[v.ID]; !ok {
		return errors.New("vehicle not found")
	}
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.vehicles[id]; !ok {
		return errors.New("vehicle not found or already deleted")
	}
	delete(f.vehicles, id)
	return nil
}

func validTestVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		Make:     "Rivulet",
		Model:    "R2",
		Year:     2025,
		BodyType: "suv",
		Price:    domain.VehiclePrice{MSRP: 52000},
		Specifications: domain.VehicleSpecifications{
			EPARange: 320,
			DCMaxKW:  200,
		},
		TechScore: 85,
		EcoScore:  90,
	}
}

func TestCreateVehicle(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	created, err := svc.CreateVehicle(context.Background(), validTestVehicle())
	if err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}
	if created.ID == 0 {
		t.Error("created vehicle has no ID")
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	cases := []struct {
		name   string
		mutate func(*domain.Vehicle)
	}{
		{"missing make", func(v *domain.Vehicle) { v.Make = "" }},
		{"missing model", func(v *domain.Vehicle) { v.Model = "" }},
		{"bad body type", func(v *domain.Vehicle) { v.BodyType = "spaceship" }},
		{"zero msrp", func(v *domain.Vehicle) { v.Price.MSRP = 0 }},
		{"negative incentive", func(v *domain.Vehicle) { v.Price.Incentives.Federal = -1 }},
		{"negative range", func(v *domain.Vehicle) { v.Specifications.EPARange = -1 }},
		{"tech score over 100", func(v *domain.Vehicle) { v.TechScore = 101 }},
	}

	for _, tc := range cases {
		v := validTestVehicle()
		tc.mutate(v)
		if _, err := svc.CreateVehicle(context.Background(), v); err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestGetAllVehiclesBodyTypeFilter(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewVehicleService(repo)

	suv := validTestVehicle()
	_, _ = svc.CreateVehicle(context.Background(), suv)

	sedan := validTestVehicle()
	sedan.BodyType = "sedan"
	_, _ = svc.CreateVehicle(context.Background(), sedan)

	got, err := svc.GetAllVehicles(context.Background(), "sedan")
	if err != nil {
		t.Fatalf("GetAllVehicles returned error: %v", err)
	}
	if len(got) != 1 || got[0].BodyType != "sedan" {
		t.Fatalf("body type filter failed: %+v", got)
	}

	if _, err := svc.GetAllVehicles(context.Background(), "spaceship"); err == nil {
		t.Error("expected error for unknown body type filter")
	}
}

func TestUpdateVehicleNotFound(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())

	v := validTestVehicle()
	v.ID = 999
	if _, err := svc.UpdateVehicle(context.Background(), v); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestDeleteVehicle(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewVehicleService(repo)

	created, _ := svc.CreateVehicle(context.Background(), validTestVehicle())

	if err := svc.DeleteVehicle(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteVehicle returned error: %v", err)
	}
	if err := svc.DeleteVehicle(context.Background(), created.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}
