// Command pfbusctl issues one-shot reads and writes against an instrument.
//
//	pfbusctl -device /dev/ttyUSB0 -family pump -unit 1 read ActualSpd
//	pfbusctl -family gauge -unit 2 write CorrFactor 1.0
//	pfbusctl -family pump -unit 1 status
//	pfbusctl init-config pfbus.toml
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pldsys/pfbus/internal/config"
	"github.com/pldsys/pfbus/internal/device"
	"github.com/pldsys/pfbus/internal/observability"
	"github.com/pldsys/pfbus/internal/protocol"
	"github.com/pldsys/pfbus/internal/protocol/params"
	"github.com/pldsys/pfbus/internal/serialport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pfbusctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rc, err := loadRC(rcPath())
	if err != nil {
		return err
	}
	opts := defaultOptions().merge(rc)

	fs := flag.NewFlagSet("pfbusctl", flag.ExitOnError)
	deviceFlag := fs.String("device", opts.Device, "serial device")
	baud := fs.Int("baud", opts.Baud, "baud rate")
	timeout := fs.Duration("timeout", opts.ReadTimeout, "per-byte read timeout")
	family := fs.String("family", opts.Family, "instrument family: pump or gauge")
	unit := fs.Int("unit", opts.Unit, "bus address of the instrument")
	filter := fs.Bool("filter", opts.CharFilter, "drop invalid characters in responses")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	args := fs.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: pfbusctl [flags] <read|write|status|errcode|ack|list|init-config> [args]")
	}

	// init-config needs no bus.
	if args[0] == "init-config" {
		if len(args) != 2 {
			return fmt.Errorf("usage: pfbusctl init-config <path>")
		}
		if err := config.WriteTemplate(args[1], false); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[1])
		return nil
	}

	reg, err := registryFor(*family)
	if err != nil {
		return err
	}
	if args[0] == "list" {
		for _, d := range reg.All() {
			fmt.Printf("%3d  %-14s %s\n", d.Num, d.Name, accessString(d.Access))
		}
		return nil
	}

	logger := observability.InitLogger("pfbusctl")
	port, err := serialport.Open(serialport.Config{
		Device:      *deviceFlag,
		Baud:        *baud,
		ReadTimeout: *timeout,
	})
	if err != nil {
		return err
	}
	defer port.Close()

	mode := protocol.FilterOff
	if *filter {
		mode = protocol.FilterOn
	}
	devOpts := []device.Option{device.WithFilter(mode), device.WithLogger(logger)}

	switch *family {
	case "pump":
		p, err := device.NewPump(port, *unit, devOpts...)
		if err != nil {
			return err
		}
		return runPump(p, reg, args)
	default:
		g, err := device.NewGauge(port, *unit, devOpts...)
		if err != nil {
			return err
		}
		return runGauge(g, reg, args)
	}
}

func registryFor(family string) (params.Registry, error) {
	switch family {
	case "pump":
		return params.Turbopump, nil
	case "gauge":
		return params.Gauge, nil
	default:
		return params.Registry{}, fmt.Errorf("unknown family %q (want pump or gauge)", family)
	}
}

func runPump(p *device.Pump, reg params.Registry, args []string) error {
	switch args[0] {
	case "read", "write":
		return runParamOp(p.Device, reg, args)
	case "errcode":
		cond, err := p.ErrorCode()
		if err != nil {
			return err
		}
		fmt.Println(cond)
		return nil
	case "ack":
		if err := p.AcknowledgeError(); err != nil {
			return err
		}
		fmt.Println("acknowledged")
		return nil
	case "status":
		return pumpStatus(p)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runGauge(g *device.Gauge, reg params.Registry, args []string) error {
	switch args[0] {
	case "read", "write":
		return runParamOp(g.Device, reg, args)
	case "errcode":
		cond, err := g.ErrorCode()
		if err != nil {
			return err
		}
		fmt.Println(cond)
		return nil
	case "status":
		return gaugeStatus(g)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runParamOp(d *device.Device, reg params.Registry, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: pfbusctl %s <param> [value]", args[0])
	}
	desc, err := resolveParam(reg, args[1])
	if err != nil {
		return err
	}
	if args[0] == "read" {
		v, err := d.Read(desc.Num)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d) = %s\n", desc.Name, desc.Num, formatValue(v))
		return nil
	}
	if len(args) != 3 {
		return fmt.Errorf("usage: pfbusctl write <param> <value>")
	}
	v, err := parseValue(desc, args[2])
	if err != nil {
		return err
	}
	if err := d.Write(desc.Num, v); err != nil {
		return err
	}
	fmt.Printf("%s (%d) <- %s\n", desc.Name, desc.Num, args[2])
	return nil
}

func pumpStatus(p *device.Pump) error {
	hz, err := p.ActualRotationSpeed()
	if err != nil {
		return err
	}
	w, err := p.DrivePower()
	if err != nil {
		return err
	}
	tm, err := p.TempMotor()
	if err != nil {
		return err
	}
	cond, err := p.ErrorCode()
	if err != nil {
		return err
	}
	fmt.Printf("speed:      %d Hz\n", hz)
	fmt.Printf("power:      %.1f W\n", w)
	fmt.Printf("temp motor: %.1f C\n", tm)
	fmt.Printf("condition:  %s\n", cond)
	return nil
}

func gaugeStatus(g *device.Gauge) error {
	typ, err := g.Type()
	if err != nil {
		return err
	}
	hpa, err := g.Pressure()
	if err != nil {
		return err
	}
	cond, err := g.ErrorCode()
	if err != nil {
		return err
	}
	fmt.Printf("type:      %s\n", typ)
	fmt.Printf("pressure:  %.3g hPa\n", hpa)
	fmt.Printf("condition: %s\n", cond)
	return nil
}

// resolveParam accepts a parameter number or a vendor short name.
func resolveParam(reg params.Registry, arg string) (params.Descriptor, error) {
	if num, err := strconv.Atoi(arg); err == nil {
		return reg.Lookup(num)
	}
	return reg.LookupName(arg)
}

func parseValue(d params.Descriptor, s string) (params.Value, error) {
	switch d.Kind {
	case params.KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return params.Value{}, fmt.Errorf("%s wants a boolean, got %q", d.Name, s)
		}
		return params.BoolValue(b), nil
	case params.KindUint:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return params.Value{}, fmt.Errorf("%s wants an integer, got %q", d.Name, s)
		}
		return params.IntValue(n), nil
	case params.KindReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return params.Value{}, fmt.Errorf("%s wants a number, got %q", d.Name, s)
		}
		return params.RealValue(f), nil
	default:
		return params.StringValue(s), nil
	}
}

func formatValue(v params.Value) string {
	switch v.Kind {
	case params.KindBool:
		return strconv.FormatBool(v.Bool)
	case params.KindUint:
		return strconv.FormatInt(v.Int, 10)
	case params.KindReal, params.KindPressure:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	default:
		return strings.TrimSpace(v.Str)
	}
}

func accessString(a params.Access) string {
	switch a {
	case params.ReadOnly:
		return "ro"
	case params.WriteOnly:
		return "wo"
	default:
		return "rw"
	}
}
