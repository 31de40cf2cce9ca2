package team

// TblIters is the name of the sql database table that contains the reward,
// baseline, and weight norm for each iteration.
const TblIters = "teamiters"

func (it *Iterator) initdb() error {
	if it.db == nil {
		return nil
	}

	s := "CREATE TABLE IF NOT EXISTS " + TblIters +
		" (iter INTEGER,reward REAL,rbar REAL,wnorm REAL);"
	_, err := it.db.Exec(s)
	return err
}

func (it *Iterator) updateDb(reward float64) error {
	if it.db == nil {
		return nil
	}

	tx, err := it.db.Begin()
	if err != nil {
		return err
	}

	s := "INSERT INTO " + TblIters + " (iter,reward,rbar,wnorm) VALUES (?,?,?,?);"
	if _, err := tx.Exec(s, it.count, reward, it.rbar, it.WeightNorm()); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
