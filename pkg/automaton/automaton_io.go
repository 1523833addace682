package automaton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
)

var (
	ErrInvalidFormat = errors.New("invalid motion primitive file format")
)

// WriteFile writes the primitive library as bzip2-compressed text:
//
//	<numPrimitives> <velocityTolerance>
//	<id> <numStates> <name>
//	<x> <y> <orientation> <velocity> <timeStep>   (numStates lines)
func (a *Automaton) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	if err := a.Write(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

// Write writes the uncompressed text format to w.
func (a *Automaton) Write(out io.Writer) error {
	w := bufio.NewWriter(out)

	tolF := strconv.FormatFloat(a.velocityTolerance, 'f', -1, 64)
	if _, err := fmt.Fprintf(w, "%d %s\n", len(a.primitives), tolF); err != nil {
		return err
	}

	for _, mp := range a.primitives {
		name := strings.ReplaceAll(mp.GetName(), " ", "_")
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%d %d %s\n", mp.GetID(), mp.Len(), name)
		for _, s := range mp.GetTrajectory() {
			xF := strconv.FormatFloat(s.Position.X, 'f', -1, 64)
			yF := strconv.FormatFloat(s.Position.Y, 'f', -1, 64)
			oF := strconv.FormatFloat(s.Orientation, 'f', -1, 64)
			vF := strconv.FormatFloat(s.Velocity, 'f', -1, 64)
			fmt.Fprintf(w, "%s %s %s %s %d\n", xF, yF, oF, vF, s.TimeStep)
		}
	}

	return w.Flush()
}

// ReadFile reads a library written by WriteFile.
func ReadFile(filename string) (*Automaton, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return Read(bz)
}

// Read parses the uncompressed text format.
func Read(in io.Reader) (*Automaton, error) {
	r := bufio.NewReader(in)
	readLine := func() (string, error) {
		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, ErrInvalidFormat
	}
	numPrimitives, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, err
	}
	tolerance, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, err
	}

	primitives := make([]*da.MotionPrimitive, 0, numPrimitives)
	for i := 0; i < numPrimitives; i++ {
		line, err = readLine()
		if err != nil {
			return nil, err
		}
		parts = strings.Fields(line)
		if len(parts) != 3 {
			return nil, ErrInvalidFormat
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, err
		}
		numStates, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, err
		}
		name := parts[2]
		if name == "-" {
			name = ""
		}

		traj := make([]da.State, numStates)
		for j := 0; j < numStates; j++ {
			line, err = readLine()
			if err != nil {
				return nil, err
			}
			var s da.State
			_, err = fmt.Sscanf(line, "%g %g %g %g %d", &s.Position.X, &s.Position.Y, &s.Orientation,
				&s.Velocity, &s.TimeStep)
			if err != nil {
				return nil, fmt.Errorf("%w: primitive %d state %d: %v", ErrInvalidFormat, id, j, err)
			}
			traj[j] = s
		}
		primitives = append(primitives, da.NewMotionPrimitive(id, name, traj))
	}

	return NewAutomaton(primitives, tolerance)
}
