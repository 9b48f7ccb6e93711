// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"

	"github.com/ava-labs/avalanchego/database"
)

// DefaultGeneScience is the name of the built-in implementation.
const DefaultGeneScience = "simple"

// GeneScience computes an offspring genome from two parent genomes. It
// must be total: any two valid genomes produce a valid genome. The bound
// implementation can be swapped at runtime (CEO-gated) as long as the
// replacement passes the capability probe.
type GeneScience interface {
	IsGeneScience() bool
	MixGenes(matron *big.Int, sire *big.Int) *big.Int
}

var geneScienceRegistry = map[string]GeneScience{}

// RegisterGeneScience makes an implementation available for binding
// under the given name. Registration happens at process start, before
// any transaction executes.
func RegisterGeneScience(name string, gs GeneScience) {
	if _, ok := geneScienceRegistry[name]; ok {
		panic("gene science already registered: " + name)
	}
	geneScienceRegistry[name] = gs
}

// ProbeGeneScience verifies a named implementation exists and behaves
// like a gene science before it may be bound.
func ProbeGeneScience(name string) (GeneScience, error) {
	if len(name) == 0 {
		return nil, ErrGeneScienceMissing
	}
	gs, ok := geneScienceRegistry[name]
	if !ok || gs == nil {
		return nil, ErrGeneScienceMissing
	}
	if !gs.IsGeneScience() {
		return nil, ErrNotGeneScience
	}
	// Minimal behavioral check: mixing must be total and stay in the
	// genome domain.
	out := gs.MixGenes(big.NewInt(10), big.NewInt(100))
	if out == nil || out.Sign() < 0 {
		return nil, ErrNotGeneScience
	}
	return gs, nil
}

// BoundGeneScience resolves the implementation currently bound in state.
func BoundGeneScience(db database.Database) (GeneScience, error) {
	name, err := GetGeneScienceName(db)
	if err != nil {
		return nil, err
	}
	return ProbeGeneScience(name)
}

var _ GeneScience = &SimpleGeneScience{}

// SimpleGeneScience is the built-in mixer: the offspring genome is the
// average of the parents' plus one. Production deployments are expected
// to register something richer and rebind.
type SimpleGeneScience struct{}

func (*SimpleGeneScience) IsGeneScience() bool { return true }

func (*SimpleGeneScience) MixGenes(matron *big.Int, sire *big.Int) *big.Int {
	out := new(big.Int).Add(matron, sire)
	out.Rsh(out, 1)
	return out.Add(out, big.NewInt(1))
}

func init() {
	RegisterGeneScience(DefaultGeneScience, &SimpleGeneScience{})
}
