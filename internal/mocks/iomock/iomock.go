// Package iomock mocks stdlib io interfaces.
package iomock

//go:generate go tool mockgen -package iomock -destination ./readclosermock.gen.go io ReadCloser
