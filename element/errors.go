package element

import "errors"

// ErrNotIndividual is returned when AsIndividual is called on an
// element whose kind is not KindIndividual.
var ErrNotIndividual = errors.New("gedcom: element is not an individual")

// ErrNotFamily is returned when AsFamily is called on an element whose
// kind is not KindFamily.
var ErrNotFamily = errors.New("gedcom: element is not a family")
