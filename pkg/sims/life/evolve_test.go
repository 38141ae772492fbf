package life

import (
	"context"
	"errors"
	"testing"
)

func TestEvolveOutcomes(t *testing.T) {
	ctx := context.Background()

	block := gridWith(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
	_, sum, err := Evolve(ctx, block, Classic8(), 10)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if sum.Outcome != Static || sum.Generations != 1 || sum.Population != 4 {
		t.Fatalf("block summary %+v", sum)
	}

	lone := gridWith(t, 5, 5, [2]int{2, 2})
	_, sum, err = Evolve(ctx, lone, Classic8(), 10)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if sum.Outcome != Extinct || sum.Generations != 1 || sum.PeakPopulation != 1 {
		t.Fatalf("lone cell summary %+v", sum)
	}

	blinker := gridWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	final, sum, err := Evolve(ctx, blinker, Classic8(), 3)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if sum.Outcome != Running || sum.Generations != 3 {
		t.Fatalf("blinker summary %+v", sum)
	}
	if final.Equal(blinker) {
		t.Fatal("after an odd number of steps the blinker should be horizontal")
	}
	if sum.Outcome.String() != "running" {
		t.Fatalf("outcome string %q", sum.Outcome)
	}
}

func TestEvolveEmptyGrid(t *testing.T) {
	empty := gridWith(t, 3, 3)
	_, sum, err := Evolve(context.Background(), empty, Orthogonal4(), 5)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if sum.Outcome != Extinct || sum.Generations != 0 {
		t.Fatalf("empty summary %+v", sum)
	}
}

func TestEvolveHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blinker := gridWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	_, sum, err := Evolve(ctx, blinker, Classic8(), 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sum.Generations != 0 {
		t.Fatalf("no generations should run after cancel, got %d", sum.Generations)
	}
}
