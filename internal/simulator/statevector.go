package simulator

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/example/go-qconform/internal/qop"
)

// state holds the register amplitudes. Wire 0 occupies the most significant
// bit of the basis index, so Kronecker order matches wire order.
type state struct {
	amps  []complex128
	wires int
}

func newState(wires int) *state {
	amps := make([]complex128, 1<<wires)
	amps[0] = 1
	return &state{amps: amps, wires: wires}
}

func (s *state) mask(wire int) int {
	return 1 << (s.wires - 1 - wire)
}

// run applies every gate of the circuit to a fresh |0...0> register.
func run(c *qop.Circuit) (*state, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := newState(c.Wires)
	for _, op := range c.Ops {
		switch op.Name {
		case qop.GateRX:
			s.applyRX(op.Wires[0], op.Params[0])
		case qop.GateRY:
			s.applyRY(op.Wires[0], op.Params[0])
		case qop.GateRZ:
			s.applyRZ(op.Wires[0], op.Params[0])
		case qop.GateCNOT:
			s.applyCNOT(op.Wires[0], op.Wires[1])
		default:
			return nil, fmt.Errorf("simulator: unsupported gate %q", op.Name)
		}
	}
	return s, nil
}

func (s *state) applyRX(wire int, theta float64) {
	bit := s.mask(wire)
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = c*s.amps[i]+js*s.amps[j], js*s.amps[i]+c*s.amps[j]
		}
	}
}

func (s *state) applyRY(wire int, theta float64) {
	bit := s.mask(wire)
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = c*s.amps[i]-sn*s.amps[j], sn*s.amps[i]+c*s.amps[j]
		}
	}
}

func (s *state) applyRZ(wire int, theta float64) {
	bit := s.mask(wire)
	phase := cmplx.Exp(complex(0, theta/2))
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= phase
		} else {
			s.amps[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *state) applyCNOT(control, target int) {
	cBit := s.mask(control)
	tBit := s.mask(target)
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}
