//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor implements the core text editing functions of mtx.
// A Buffer holds rows of text addressed by grapheme cluster, the cursor
// functions move points through a buffer, and an Editor ties a buffer
// to a cursor, a mode, a selection and a command line.
// Columns are always grapheme indices, never byte offsets.
package editor
