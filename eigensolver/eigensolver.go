// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eigensolver invokes an external SLEPc/PETSc MPI process to
// solve the generalized eigenvalue problem assembled by galerkin: the
// A/B matrices are written to scratch files in PETSc's binary AIJ
// format, the solver binary is exec'd against them, and its
// eigenvector/eigenvalue output files are read back. No eigensolver
// code runs in this process.
package eigensolver

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/cpmech/curlfem/sparse"
	"github.com/cpmech/gosl/utl"
)

// petscVecClassID is PETSc's binary classid for a Vec object.
const petscVecClassID = 1211214

// EigenPair is the solved (eigenvalue, eigenvector) pair.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// Config names the directory holding the `solve_gep` solver binary; a
// `tmp` subdirectory of it is used for scratch PETSc files.
type Config struct {
	Dir string
}

// ConfigFromEnv builds a Config from the GEP_SOLVE_DIR environment
// variable, returning a SolverNotFound error if it is unset.
func ConfigFromEnv() (Config, error) {
	dir := os.Getenv("GEP_SOLVE_DIR")
	if dir == "" {
		return Config{}, &Error{Kind: SolverNotFound}
	}
	return Config{Dir: dir}, nil
}

// Solve writes a and b to scratch PETSc binary files, execs the
// solver against them targeting targetEigenvalue, and reads back its
// solution. The scratch files are removed in every return path.
func (c Config) Solve(a, b *sparse.Symmetric, targetEigenvalue float64) (*EigenPair, error) {
	prefix := uniquePrefix()
	tmpDir := filepath.Join(c.Dir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, &Error{Kind: FailedIO, Cause: err}
	}
	defer cleanScratch(tmpDir, prefix)

	if err := writeMatrix(tmpDir, prefix, "a", a); err != nil {
		return nil, &Error{Kind: FailedIO, Cause: err}
	}
	if err := writeMatrix(tmpDir, prefix, "b", b); err != nil {
		return nil, &Error{Kind: FailedIO, Cause: err}
	}

	cmd := exec.Command("mpiexec", "-np", "1", "-q", "./solve_gep",
		"-te", utl.Sf("%.10f", targetEigenvalue),
		"-fp", prefix,
	)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			return nil, &Error{Kind: SolverNotFound, Cause: runErr, Stderr: stderr.String()}
		}
		return nil, mapExitCode(exitErr.ExitCode(), stderr.String())
	}

	return retrieveSolution(tmpDir, prefix)
}

func mapExitCode(code int, stderr string) *Error {
	switch code {
	case 1:
		return &Error{Kind: FailedInit, ExitCode: code, Stderr: stderr}
	case 2:
		return &Error{Kind: BadArguments, ExitCode: code, Stderr: stderr}
	case 3, 4, 5, 6:
		return &Error{Kind: FailedInit, ExitCode: code, Stderr: stderr}
	case 7:
		return &Error{Kind: FailedConverge, ExitCode: code, Stderr: stderr}
	case 8:
		return &Error{Kind: FailedIO, ExitCode: code, Stderr: stderr}
	default:
		return &Error{Kind: FailedIO, ExitCode: code, Stderr: stderr}
	}
}

func writeMatrix(tmpDir, prefix, tag string, m *sparse.Symmetric) error {
	f, err := os.Create(filepath.Join(tmpDir, prefix+"_"+tag+".dat"))
	if err != nil {
		return err
	}
	defer f.Close()
	return m.WritePETScBinary(f)
}

func retrieveSolution(tmpDir, prefix string) (*EigenPair, error) {
	vector, err := retrieveEigenvector(filepath.Join(tmpDir, prefix+"_evec.dat"))
	if err != nil {
		return nil, &Error{Kind: FailedIO, Cause: err}
	}
	value, err := retrieveEigenvalue(filepath.Join(tmpDir, prefix+"_eval.dat"))
	if err != nil {
		return nil, &Error{Kind: FailedIO, Cause: err}
	}
	return &EigenPair{Value: value, Vector: vector}, nil
}

func retrieveEigenvector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var classID int32
	if err := binary.Read(f, binary.BigEndian, &classID); err != nil {
		return nil, err
	}
	if classID != petscVecClassID {
		return nil, io.ErrUnexpectedEOF
	}
	var length int32
	if err := binary.Read(f, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	vector := make([]float64, length)
	if err := binary.Read(f, binary.BigEndian, vector); err != nil {
		return nil, err
	}
	return vector, nil
}

func retrieveEigenvalue(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var value float64
	if err := binary.Read(f, binary.BigEndian, &value); err != nil {
		return 0, err
	}
	return value, nil
}

// uniquePrefix derives a short, collision-resistant scratch-file
// prefix from the current time, mirroring the hashed-timestamp
// approach the original solver wrapper used.
func uniquePrefix() string {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	h.Write(buf[:])
	return utl.Sf("p_%x", h.Sum64())
}

func cleanScratch(tmpDir, prefix string) {
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if len(entry.Name()) >= len(prefix) && entry.Name()[:len(prefix)] == prefix {
			os.Remove(filepath.Join(tmpDir, entry.Name()))
		}
	}
}
