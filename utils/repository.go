// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

type Tabler interface {
	TableName() string
}

type Repository[ID any, T Tabler, Tx any] interface {
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	All() ([]T, error)
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx

	Save(tx Tx, t *T) error
	SaveBatch(tx Tx, ts []T) error
}
