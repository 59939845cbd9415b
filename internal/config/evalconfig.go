//
// corvid - a bitboard chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration toggles individual evaluation terms (§4.5, §10). Each
// term can be switched off independently for debugging and tuning.
type evalConfiguration struct {
	UsePsqt                bool
	UseKingSafety          bool
	UsePawnStructure       bool
	UseMinorCentralization bool
	UseOutposts            bool
	UseMobility            bool
	UseDevelopment         bool

	Tempo int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UsePsqt = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.UsePawnStructure = true
	Settings.Eval.UseMinorCentralization = true
	Settings.Eval.UseOutposts = true
	Settings.Eval.UseMobility = true
	Settings.Eval.UseDevelopment = true
	Settings.Eval.Tempo = 10
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
