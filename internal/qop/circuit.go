package qop

import "fmt"

// Gate names understood by conforming devices.
const (
	GateRX   = "RX"
	GateRY   = "RY"
	GateRZ   = "RZ"
	GateCNOT = "CNOT"
)

// GateOp is one gate application: a named gate, the wires it acts on, and
// its rotation angles, if any.
type GateOp struct {
	Name   string    `json:"name"`
	Wires  []int     `json:"wires"`
	Params []float64 `json:"params,omitempty"`
}

// Circuit is an ordered gate list over a fixed wire count. Circuits are
// built once per conformance case and executed by the device under test.
type Circuit struct {
	Wires int      `json:"wires"`
	Ops   []GateOp `json:"ops"`
}

func NewCircuit(wires int) *Circuit {
	return &Circuit{Wires: wires}
}

// RX appends a rotation about X by theta on the given wire.
func (c *Circuit) RX(theta float64, wire int) *Circuit {
	c.Ops = append(c.Ops, GateOp{Name: GateRX, Wires: []int{wire}, Params: []float64{theta}})
	return c
}

// RY appends a rotation about Y by theta on the given wire.
func (c *Circuit) RY(theta float64, wire int) *Circuit {
	c.Ops = append(c.Ops, GateOp{Name: GateRY, Wires: []int{wire}, Params: []float64{theta}})
	return c
}

// RZ appends a rotation about Z by theta on the given wire.
func (c *Circuit) RZ(theta float64, wire int) *Circuit {
	c.Ops = append(c.Ops, GateOp{Name: GateRZ, Wires: []int{wire}, Params: []float64{theta}})
	return c
}

// CNOT appends a controlled-NOT with the given control and target wires.
func (c *Circuit) CNOT(control, target int) *Circuit {
	c.Ops = append(c.Ops, GateOp{Name: GateCNOT, Wires: []int{control, target}})
	return c
}

// Validate checks wire bounds and gate arity.
func (c *Circuit) Validate() error {
	if c.Wires < 1 {
		return fmt.Errorf("qop: circuit needs at least one wire, got %d", c.Wires)
	}
	for i, op := range c.Ops {
		switch op.Name {
		case GateRX, GateRY, GateRZ:
			if len(op.Wires) != 1 || len(op.Params) != 1 {
				return fmt.Errorf("qop: op %d (%s) wants one wire and one angle, got wires=%v params=%v",
					i, op.Name, op.Wires, op.Params)
			}
		case GateCNOT:
			if len(op.Wires) != 2 {
				return fmt.Errorf("qop: op %d (CNOT) wants two wires, got %v", i, op.Wires)
			}
			if op.Wires[0] == op.Wires[1] {
				return fmt.Errorf("qop: op %d (CNOT) control and target coincide on wire %d", i, op.Wires[0])
			}
		default:
			return fmt.Errorf("qop: op %d has unknown gate %q", i, op.Name)
		}
		for _, w := range op.Wires {
			if w < 0 || w >= c.Wires {
				return fmt.Errorf("qop: op %d (%s) wire %d out of range for %d wires", i, op.Name, w, c.Wires)
			}
		}
	}
	return nil
}
