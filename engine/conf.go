// Copyright 2025 Mthuli Percival Buthelezi
// Copyright 2025 Sakhile Marcus Zungu
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "fmt"

// DBConf configures the PostgreSQL connection used by the reference
// corpus registry. The registry is optional; without it, keyness always
// requires an uploaded reference file.
type DBConf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
}

func (conf *DBConf) ValidateAndDefaults(confContext string) error {
	if conf.Host == "" {
		return fmt.Errorf("missing `%s.host`", confContext)
	}
	if conf.Port == 0 {
		conf.Port = 5432
	}
	if conf.Name == "" {
		return fmt.Errorf("missing `%s.name`", confContext)
	}
	if conf.User == "" {
		return fmt.Errorf("missing `%s.user`", confContext)
	}
	return nil
}
