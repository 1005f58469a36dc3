package accumulator

import "github.com/cronokirby/saferith"

// Observer receives the intermediate values Verify and
// UpdateWitnessOnDeletion compute, for diagnostics. Implementations must
// not retain or mutate the Nats they are handed.
type Observer interface {
	// ObserveVerify is called once per Verify with the exponentiation
	// result and the current accumulator value.
	ObserveVerify(element []byte, computed, current *saferith.Nat)
	// ObserveWitnessUpdate is called once per successful
	// UpdateWitnessOnDeletion with the refreshed witness.
	ObserveWitnessUpdate(element, deleted []byte, updated *saferith.Nat)
}

// SetObserver installs obs on the instance. A nil obs restores the
// default, which discards observations.
func (acc *Accumulator) SetObserver(obs Observer) {
	if obs == nil {
		obs = noopObserver{}
	}
	acc.observer = obs
}

type noopObserver struct{}

func (noopObserver) ObserveVerify([]byte, *saferith.Nat, *saferith.Nat) {}
func (noopObserver) ObserveWitnessUpdate([]byte, []byte, *saferith.Nat) {}
