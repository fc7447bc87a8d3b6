package adt

import (
	"fmt"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
)

// A specialization of a map of addresses to token amounts.
// Absent keys are read as zero balances.
type BalanceTable Map

// Interprets a store as balance table with root `r`.
func AsBalanceTable(s Store, r cid.Cid) *BalanceTable {
	return &BalanceTable{
		root:  r,
		store: s,
	}
}

// Returns the root cid of underlying HAMT.
func (t *BalanceTable) Root() cid.Cid {
	return t.root
}

// Gets the balance for a key, or zero if the key has never been set.
func (t *BalanceTable) Get(key addr.Address) (abi.TokenAmount, error) {
	var value abi.TokenAmount
	found, err := (*Map)(t).Get(AddrKey(key), &value)
	if err != nil {
		return big.Zero(), err // The errors from Map carry good information, no need to wrap here.
	}
	if !found {
		return big.Zero(), nil
	}
	return value, nil
}

// Sets the balance for an address, overwriting any previous balance.
func (t *BalanceTable) Set(key addr.Address, value abi.TokenAmount) error {
	return (*Map)(t).Put(AddrKey(key), &value)
}

// Adds an amount to a balance, initializing an absent entry at zero.
func (t *BalanceTable) Add(key addr.Address, value abi.TokenAmount) error {
	prev, err := t.Get(key)
	if err != nil {
		return err
	}
	sum := big.Add(prev, value)
	if sum.Sign() < 0 {
		return fmt.Errorf("negative balance %v for %v after adding %v", sum, key, value)
	}
	return (*Map)(t).Put(AddrKey(key), &sum)
}

// MustSubtract subtracts an amount from a balance, erroring if the balance would go negative.
func (t *BalanceTable) MustSubtract(key addr.Address, req abi.TokenAmount) error {
	return t.Add(key, req.Neg())
}

// Removes an entry from the table, returning the prior value (zero if absent).
func (t *BalanceTable) Remove(key addr.Address) (abi.TokenAmount, error) {
	prev, err := t.Get(key)
	if err != nil {
		return big.Zero(), err
	}
	err = (*Map)(t).Delete(AddrKey(key))
	if err != nil {
		return big.Zero(), err
	}
	return prev, nil
}

// Total returns the sum of all balances in the table.
func (t *BalanceTable) Total() (abi.TokenAmount, error) {
	total := big.Zero()
	var balance abi.TokenAmount
	err := (*Map)(t).ForEach(&balance, func(key string) error {
		total = big.Add(total, balance)
		return nil
	})
	return total, err
}
