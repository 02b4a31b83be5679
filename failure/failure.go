/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package failure

import (
	"bytes"
	"encoding"
	"errors"
)

// Code is a processing-failure tag. The string values are stable and are
// what ends up in logs and rendered diagnostics.
type Code string

// Family groups related codes.
type Family string

const (
	FamilyInput      Family = "input"
	FamilyCheck      Family = "check"
	FamilyConfig     Family = "config"
	FamilyTransform  Family = "transform"
	FamilyValidation Family = "validation"
	FamilyInternal   Family = "internal"
)

// Input shape.
const (
	IsNullish                 Code = "isNullish"
	IsNotAnObject             Code = "isNotAnObject"
	BuildSummaryIsNullish     Code = "buildSummaryIsNullish"
	BuildSummaryIsNotAnObject Code = "buildSummaryIsNotAnObject"
)

// Pre-flight checks.
const (
	CheckIsNullish                             Code = "checkIsNullish"
	CheckIsNotAnObject                         Code = "checkIsNotAnObject"
	CheckInputObjectForValuesIsNotAnObject     Code = "checkInputObjectForValuesIsNotAnObject"
	CheckInputObjectForValuesFailed            Code = "checkInputObjectForValuesFailed"
	CheckInputObjectForTypesIsNotAnObject      Code = "checkInputObjectForTypesIsNotAnObject"
	CheckInputObjectForTypesFailed             Code = "checkInputObjectForTypesFailed"
	CheckInputObjectForTypesValueIsArrayFailed Code = "checkInputObjectForTypesValueIsArrayFailed"
	CheckInputObjectForKeysIsNotAnObject       Code = "checkInputObjectForKeysIsNotAnObject"
	CheckInputObjectForKeysFailed              Code = "checkInputObjectForKeysFailed"
)

// Candidate path configuration.
const (
	PathToErrorsIsNotAnArray            Code = "pathToErrorsIsNotAnArray"
	PathToErrorsValuesAreNotStrings     Code = "pathToErrorsValuesAreNotStrings"
	PathToCodeIsInvalid                 Code = "pathToCodeIsInvalid"
	PathToCodeIsNotAnArray              Code = "pathToCodeIsNotAnArray"
	PathToCodeValuesAreNotStrings       Code = "pathToCodeValuesAreNotStrings"
	PathToNumberCodeIsInvalid           Code = "pathToNumberCodeIsInvalid"
	PathToNumberCodeIsNotAnArray        Code = "pathToNumberCodeIsNotAnArray"
	PathToNumberCodeValuesAreNotStrings Code = "pathToNumberCodeValuesAreNotStrings"
	PathToMessageIsInvalid              Code = "pathToMessageIsInvalid"
	PathToMessageIsNotAnArray           Code = "pathToMessageIsNotAnArray"
	PathToMessageValuesAreNotStrings    Code = "pathToMessageValuesAreNotStrings"
	PathToDetailsIsInvalid              Code = "pathToDetailsIsInvalid"
	PathToDetailsIsNotAnArray           Code = "pathToDetailsIsNotAnArray"
	PathToDetailsValuesAreNotStrings    Code = "pathToDetailsValuesAreNotStrings"
	PathToDomainIsInvalid               Code = "pathToDomainIsInvalid"
	PathToDomainIsNotAnArray            Code = "pathToDomainIsNotAnArray"
	PathToDomainValuesAreNotStrings     Code = "pathToDomainValuesAreNotStrings"
)

// Transform configuration.
const (
	TransformCodeIsNotAFunction       Code = "transformCodeIsNotAFunction"
	TransformNumberCodeIsNotAFunction Code = "transformNumberCodeIsNotAFunction"
	TransformMessageIsNotAFunction    Code = "transformMessageIsNotAFunction"
	TransformDetailsIsNotAFunction    Code = "transformDetailsIsNotAFunction"
	TransformDomainIsNotAFunction     Code = "transformDomainIsNotAFunction"
)

// Transform results.
const (
	TransformCodeResultIsNotString       Code = "transformCodeResultIsNotString"
	TransformNumberCodeResultIsNotNumber Code = "transformNumberCodeResultIsNotNumber"
	TransformNumberCodeResultIsNaN       Code = "transformNumberCodeResultIsNaN"
	TransformMessageResultIsNotString    Code = "transformMessageResultIsNotString"
	TransformDetailsResultIsNotString    Code = "transformDetailsResultIsNotString"
	TransformDomainResultIsNotString     Code = "transformDomainResultIsNotString"
)

// Classification.
const (
	UnknownCodeOrMessage Code = "unknownCodeOrMessage"
	InvalidSummary       Code = "invalidSummary"
)

// Recovered runtime faults.
const (
	GeneralBuildSummariesFromObjectError  Code = "generalBuildSummariesFromObjectError"
	GeneralBuildSummaryFromObjectError    Code = "generalBuildSummaryFromObjectError"
	GeneralCheckInputObjectForValuesError Code = "generalCheckInputObjectForValuesError"
)

// families is the registry of every known code. It doubles as the source of
// truth for Known and All.
var families = map[Code]Family{
	IsNullish:                 FamilyInput,
	IsNotAnObject:             FamilyInput,
	BuildSummaryIsNullish:     FamilyInput,
	BuildSummaryIsNotAnObject: FamilyInput,

	CheckIsNullish:                             FamilyCheck,
	CheckIsNotAnObject:                         FamilyCheck,
	CheckInputObjectForValuesIsNotAnObject:     FamilyConfig,
	CheckInputObjectForValuesFailed:            FamilyCheck,
	CheckInputObjectForTypesIsNotAnObject:      FamilyConfig,
	CheckInputObjectForTypesFailed:             FamilyCheck,
	CheckInputObjectForTypesValueIsArrayFailed: FamilyCheck,
	CheckInputObjectForKeysIsNotAnObject:       FamilyConfig,
	CheckInputObjectForKeysFailed:              FamilyCheck,

	PathToErrorsIsNotAnArray:            FamilyConfig,
	PathToErrorsValuesAreNotStrings:     FamilyConfig,
	PathToCodeIsInvalid:                 FamilyConfig,
	PathToCodeIsNotAnArray:              FamilyConfig,
	PathToCodeValuesAreNotStrings:       FamilyConfig,
	PathToNumberCodeIsInvalid:           FamilyConfig,
	PathToNumberCodeIsNotAnArray:        FamilyConfig,
	PathToNumberCodeValuesAreNotStrings: FamilyConfig,
	PathToMessageIsInvalid:              FamilyConfig,
	PathToMessageIsNotAnArray:           FamilyConfig,
	PathToMessageValuesAreNotStrings:    FamilyConfig,
	PathToDetailsIsInvalid:              FamilyConfig,
	PathToDetailsIsNotAnArray:           FamilyConfig,
	PathToDetailsValuesAreNotStrings:    FamilyConfig,
	PathToDomainIsInvalid:               FamilyConfig,
	PathToDomainIsNotAnArray:            FamilyConfig,
	PathToDomainValuesAreNotStrings:     FamilyConfig,

	TransformCodeIsNotAFunction:       FamilyConfig,
	TransformNumberCodeIsNotAFunction: FamilyConfig,
	TransformMessageIsNotAFunction:    FamilyConfig,
	TransformDetailsIsNotAFunction:    FamilyConfig,
	TransformDomainIsNotAFunction:     FamilyConfig,

	TransformCodeResultIsNotString:       FamilyTransform,
	TransformNumberCodeResultIsNotNumber: FamilyTransform,
	TransformNumberCodeResultIsNaN:       FamilyTransform,
	TransformMessageResultIsNotString:    FamilyTransform,
	TransformDetailsResultIsNotString:    FamilyTransform,
	TransformDomainResultIsNotString:     FamilyTransform,

	UnknownCodeOrMessage: FamilyValidation,
	InvalidSummary:       FamilyValidation,

	GeneralBuildSummariesFromObjectError:  FamilyInternal,
	GeneralBuildSummaryFromObjectError:    FamilyInternal,
	GeneralCheckInputObjectForValuesError: FamilyInternal,
}

// ErrUnknownCode is returned when text does not name a known failure code.
var ErrUnknownCode = errors.New("failure: unknown code")

var (
	_ error                    = Code("")
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Error implements error. The text is the bare tag so it stays greppable.
func (c Code) Error() string { return string(c) }

// String returns the tag.
func (c Code) String() string { return string(c) }

// Known reports whether c belongs to the taxonomy.
func (c Code) Known() bool {
	_, ok := families[c]
	return ok
}

// Family returns the family of c, or FamilyInternal for unknown codes.
func (c Code) Family() Family {
	if f, ok := families[c]; ok {
		return f
	}
	return FamilyInternal
}

// All returns every known code. The order is unspecified.
func All() []Code {
	out := make([]Code, 0, len(families))
	for c := range families {
		out = append(out, c)
	}
	return out
}

// Parse returns the Code named by s.
func Parse(s string) (Code, error) {
	c := Code(s)
	if !c.Known() {
		return "", ErrUnknownCode
	}
	return c, nil
}

// From extracts a Code from err. Errors that are not failure codes map to
// fallback, so callers always get a tag to record.
func From(err error, fallback Code) Code {
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return fallback
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Known() {
		return nil, ErrUnknownCode
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
