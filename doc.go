/*
Package krutidev converts text typed in the Kruti Dev family of legacy
Devanagari fonts into standard Unicode.

Kruti Dev and its many siblings (DevLys, Chanakya, Shusha, ...) are
glyph encodings, sometimes called visual encodings: a document stores
plain ASCII/Latin-1 code units and relies on the font to paint
Devanagari glyphs for them. Under the font, the letter sequence "fdrkc"
renders as किताब, but to every Unicode-aware program it is five Latin
letters. Large archives of Hindi text (newspapers, court records,
government gazettes) still exist in this form.

Conversion runs in three passes over the text:

  - substitution of multi-unit patterns (conjuncts, nukta forms),
    longest pattern first,
  - substitution of single units,
  - a reordering pass for the short-i matra ि, which the legacy
    encoding writes before the consonant it logically follows.

Anything the tables cannot account for is left in place and reported as
a residual, never as an error; legacy corpora are open-ended and
unmapped glyphs are expected.

	res := krutidev.Convert("fdrkc i<+us")
	fmt.Println(res.Text)   // किताब पढ़नी

Supplemental mapping files for font variants can be loaded with the
mapfile subpackage. A streaming variant of the converter implements
golang.org/x/text/transform.Transformer, see Converter.Transformer.

Further Reading

	https://en.wikipedia.org/wiki/Kruti_Dev
	https://www.unicode.org/charts/PDF/U0900.pdf

BSD License

Copyright (c) The indictext authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package krutidev

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'krutidev'
func tracer() tracing.Trace {
	return tracing.Select("krutidev")
}
