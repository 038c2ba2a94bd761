// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernels provides the public operator kernel API.
//
// Kernels are created per operator instance, configured once against the
// runtime graph and executed once per inference:
//
//	reg := kernels.NewRegistry()
//	k, err := reg.New(op.Code)
//	if err != nil {
//	    return err
//	}
//	if err := k.Configure(op, g); err != nil {
//	    return err // model is invalid for this operator
//	}
//	k.Execute(op, g)
package kernels

import (
	"log/slog"

	"github.com/born-ml/micro/internal/kernels"
)

// Kernel is the configure/execute contract of an operator kernel.
type Kernel = kernels.Kernel

// Factory creates unconfigured kernel instances.
type Factory = kernels.Factory

// Registry maps operator codes to kernel factories.
type Registry = kernels.Registry

// ConfigError reports why Configure rejected an operator.
type ConfigError = kernels.ConfigError

// Pool2D is a 2D pooling kernel instance.
type Pool2D = kernels.Pool2D

// Configuration error causes, usable with errors.Is.
var (
	ErrConfiguration    = kernels.ErrConfiguration
	ErrOpMismatch       = kernels.ErrOpMismatch
	ErrTopology         = kernels.ErrTopology
	ErrInvalidAttribute = kernels.ErrInvalidAttribute
	ErrTypeMismatch     = kernels.ErrTypeMismatch
	ErrUnsupportedType  = kernels.ErrUnsupportedType
	ErrShapeMismatch    = kernels.ErrShapeMismatch
	ErrQuantization     = kernels.ErrQuantization
)

// NewRegistry creates a registry with every supported kernel.
func NewRegistry() *Registry {
	return kernels.NewRegistry()
}

// NewAveragePool2D creates an unconfigured average pooling kernel.
func NewAveragePool2D() *Pool2D {
	return kernels.NewAveragePool2D()
}

// NewMaxPool2D creates an unconfigured max pooling kernel.
func NewMaxPool2D() *Pool2D {
	return kernels.NewMaxPool2D()
}

// NewL2Pool2D creates an unconfigured L2 pooling kernel.
func NewL2Pool2D() *Pool2D {
	return kernels.NewL2Pool2D()
}

// SetLogger sets the logger used for configure-time diagnostics.
func SetLogger(l *slog.Logger) {
	kernels.SetLogger(l)
}
