package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerPatchKeepsUnsuppliedFields(t *testing.T) {
	c := Customer{ID: 1, Name: "Aying", Email: "a@example.com", PhoneNumber: "555"}
	name := "Aya"
	CustomerPatch{Name: &name}.Apply(&c)

	assert.Equal(t, Customer{ID: 1, Name: "Aya", Email: "a@example.com", PhoneNumber: "555"}, c)
}

func TestMaidPatch(t *testing.T) {
	m := Maid{ID: 2, Name: "Rem", ShiftStartTime: DefaultShiftStart, ShiftEndTime: DefaultShiftEnd}
	end := "20:00:00"
	p := MaidPatch{ShiftEndTime: &end}
	assert.False(t, p.Empty())
	p.Apply(&m)

	assert.Equal(t, "Rem", m.Name)
	assert.Equal(t, "09:00:00", m.ShiftStartTime)
	assert.Equal(t, "20:00:00", m.ShiftEndTime)
	assert.True(t, MaidPatch{}.Empty())
}

func TestOrderPatch(t *testing.T) {
	o := Order{ID: 3, CustomerID: 1, MaidID: 2, TotalAmount: 12.5}
	amount := 0.0
	OrderPatch{TotalAmount: &amount}.Apply(&o)

	assert.Equal(t, int64(1), o.CustomerID)
	assert.Equal(t, int64(2), o.MaidID)
	assert.Zero(t, o.TotalAmount)
	assert.True(t, OrderPatch{}.Empty())
}
