package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/pkg/curves"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

var errUnknownCurve = errors.New("unknown curve")

type pointArgs struct {
	x1, y1, x2, y2 string
}

func runGenerator(out io.Writer, logger *zap.Logger, curve string) error {
	switch curve {
	case "secp256k1":
		c, g := curves.Secp256k1()
		return printGenerator(out, logger, c, g)
	case "bn254":
		c, g := curves.BN254()
		return printGenerator(out, logger, c, g)
	case "p256":
		c, g := curves.P256()
		return printGenerator(out, logger, c, g)
	}
	return errors.Wrapf(errUnknownCurve, "%q", curve)
}

func runAdd(out io.Writer, logger *zap.Logger, curve string, args pointArgs) error {
	switch curve {
	case "secp256k1":
		c, g := curves.Secp256k1()
		return addOn(out, logger, c, g, args)
	case "bn254":
		c, g := curves.BN254()
		return addOn(out, logger, c, g, args)
	case "p256":
		c, g := curves.P256()
		return addOn(out, logger, c, g, args)
	}
	return errors.Wrapf(errUnknownCurve, "%q", curve)
}

func runField(out io.Writer, logger *zap.Logger, curve, op, a, b string) error {
	switch curve {
	case "secp256k1":
		return fieldOn[field.Secp256k1](out, logger, op, a, b)
	case "bn254":
		return fieldOn[field.BN254](out, logger, op, a, b)
	case "p256":
		return fieldOn[field.P256](out, logger, op, a, b)
	}
	return errors.Wrapf(errUnknownCurve, "%q", curve)
}

func printGenerator[M field.Modulus](out io.Writer, logger *zap.Logger, c *curves.Curve[field.Element[M]], g curves.Point[field.Element[M]]) error {
	one := field.One[M]()
	logger.Info("curve loaded",
		zap.String("curve", c.Name()),
		zap.Stringer("a", c.A()),
		zap.Stringer("b", c.B()),
	)
	fmt.Fprintf(out, "field one: %s\n", one)
	fmt.Fprintf(out, "generator: %s\n", g)
	return nil
}

func addOn[M field.Modulus](out io.Writer, logger *zap.Logger, c *curves.Curve[field.Element[M]], g curves.Point[field.Element[M]], args pointArgs) error {
	p, err := pointArg(c, g, args.x1, args.y1)
	if err != nil {
		return errors.WithMessage(err, "first point")
	}
	q, err := pointArg(c, g, args.x2, args.y2)
	if err != nil {
		return errors.WithMessage(err, "second point")
	}

	r := p.Add(q)
	logger.Debug("points added",
		zap.String("curve", c.Name()),
		zap.Stringer("p", p),
		zap.Stringer("q", q),
		zap.Stringer("sum", r),
	)
	fmt.Fprintln(out, r)
	return nil
}

// pointArg returns g when both coordinates are empty.
func pointArg[M field.Modulus](c *curves.Curve[field.Element[M]], g curves.Point[field.Element[M]], xs, ys string) (curves.Point[field.Element[M]], error) {
	if xs == "" && ys == "" {
		return g, nil
	}
	x, err := optionalElement[M](xs)
	if err != nil {
		return curves.Point[field.Element[M]]{}, err
	}
	y, err := optionalElement[M](ys)
	if err != nil {
		return curves.Point[field.Element[M]]{}, err
	}
	return c.NewPoint(x, y)
}

func optionalElement[M field.Modulus](s string) (*field.Element[M], error) {
	if s == "" {
		return nil, nil
	}
	e, err := parseElement[M](s)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func parseElement[M field.Modulus](s string) (field.Element[M], error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return field.Element[M]{}, errors.Errorf("cannot parse integer %q", s)
	}
	return field.FromBig[M](n), nil
}

func fieldOn[M field.Modulus](out io.Writer, logger *zap.Logger, op, as, bs string) error {
	a, err := parseElement[M](as)
	if err != nil {
		return err
	}

	var r field.Element[M]
	switch op {
	case "pow":
		n, err := strconv.ParseInt(bs, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "exponent %q", bs)
		}
		if r, err = a.Pow(n); err != nil {
			return errors.Wrapf(err, "%s^%d", a, n)
		}
	case "add", "sub", "mul", "div":
		b, err := parseElement[M](bs)
		if err != nil {
			return err
		}
		switch op {
		case "add":
			r = a.Add(b)
		case "sub":
			r = a.Sub(b)
		case "mul":
			r = a.Mul(b)
		case "div":
			if r, err = a.Div(b); err != nil {
				return errors.Wrapf(err, "%s / %s", a, b)
			}
		}
	default:
		return errors.Errorf("unknown operation %q", op)
	}

	logger.Debug("field operation", zap.String("op", op), zap.Stringer("result", r))
	fmt.Fprintln(out, r)
	return nil
}
