// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 NFT SZN
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/nftszn/traderd/fault"
)

// test that errors are classified by their declared class
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{fault.AlreadyHavePortfolio, true, false, false, false},
		{fault.AlreadyInitialised, true, false, false, false},
		{fault.ContractClosed, false, false, false, true},
		{fault.FailedToPaySeller, false, false, false, true},
		{fault.InvalidPortfolioAuthorization, false, true, false, false},
		{fault.InvalidStateTransition, false, true, false, false},
		{fault.MissingPortfolio, false, false, true, false},
		{fault.NoPortfolio, false, false, true, false},
		{fault.NotAdmin, false, true, false, false},
		{fault.NotForSale, false, false, true, false},
		{fault.NotInPortfolio, false, false, true, false},
		{fault.NotInitialised, false, false, false, true},
		{fault.TransferredValueTooLow, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}
