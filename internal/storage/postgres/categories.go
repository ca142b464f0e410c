package postgres

import "github.com/lininnin/mindtrack/internal/models"

func (s *Store) SaveCategory(cat models.Category) error {
	_, err := s.db.Exec(`
		INSERT INTO categories (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		cat.ID, cat.Name,
	)
	return err
}

func (s *Store) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, name FROM categories ORDER BY lower(name)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) DeleteCategory(id string) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (s *Store) ClearCategoryRefs(categoryID string) (int, error) {
	var total int64

	res, err := s.db.Exec(`UPDATE tasks SET category_id = '' WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, err
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	res, err = s.db.Exec(`UPDATE events SET category_id = '' WHERE category_id = $1`, categoryID)
	if err != nil {
		return int(total), err
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	return int(total), nil
}
