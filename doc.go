// Package strassen is a small workbench for square-matrix multiplication:
// the classic triple loop side by side with Strassen's seven-product
// recursion, over dense float32 storage.
//
// 🚀 What is inside?
//
//	• Dense N×N matrices with bounds-checked access and a finite-value guard
//	• Element-wise Add/Sub and matrix-vector products (vectorized via vek32)
//	• Quadrant Split/Combine, the building block of the recursion
//	• MulNaive and MulStrassen with a tunable naive threshold and optional padding
//	• FindMax and lane-grouped layout conversions
//
// Layout:
//
//	matrix/          the engine (types, kernels, validators, options)
//	internal/bench/  seeded operand generation, timing runner, YAML plans
//	cmd/matbench/    CLI with run, lanes and version commands
//
// One level of the recursion:
//
//	┌────┬────┐   ┌────┬────┐
//	│ A0 │ A1 │ × │ B0 │ B1 │  →  P1..P7  →  C0 = P1+P4−P5+P7, C1 = P3+P5,
//	├────┼────┤   ├────┼────┤                C2 = P2+P4,       C3 = P1−P2+P3+P6
//	│ A2 │ A3 │   │ B2 │ B3 │
//	└────┴────┘   └────┴────┘
//
//	go get github.com/katalvlaran/strassen/matrix
package strassen
