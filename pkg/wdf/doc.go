// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


/*
Package wdf decodes Renishaw WiRE (.wdf) spectroscopy files.

	+------+------+------+------+-----
	| WDF1 | .... | XLST | DATA | ...
	+------+------+------+------+-----

A WDF file is a chain of blocks. Every block starts with a 16 byte header
(4 byte ASCII id, uint32 uid, uint64 size including the header). The WDF1
block at offset 0 describes the measurement; XLST holds the wavenumber axis
and DATA holds the intensities as float32 values.

Only single-spectrum files are supported. Maps and series (more than one
spectrum) are rejected with ErrUnsupportedMap.
*/
package wdf
