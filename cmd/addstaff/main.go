package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/seanyjeong/academy-web-sub001/app/config"
	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/logger"
	"github.com/seanyjeong/academy-web-sub001/app/models"
	"github.com/seanyjeong/academy-web-sub001/app/routes/auth"
)

// Creates a staff account from the command line. Used to bootstrap the
// first admin of a fresh install, before anyone can log into the
// console to do it there.
func main() {
	email := flag.String("email", "", "login email")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "initial password")
	role := flag.String("role", "admin", "role name to assign")
	academySlug := flag.String("academy", "", "academy slug to grant (optional)")
	flag.Parse()

	logger.Init("info", "console")

	if *email == "" || *name == "" || *password == "" {
		log.Fatal().Msg("email, name, and password are required")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if err := cfg.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	db := config.GetDB()
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("password hash failed")
	}

	user := &models.User{Email: *email, Name: *name, Password: hash}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("user create failed")
	}

	roles, err := database.GetAllRoles(db)
	if err != nil {
		log.Fatal().Err(err).Msg("role lookup failed")
	}
	for _, r := range roles {
		if r.Name == *role {
			if err := database.SetUserRoles(db, user.ID, []string{r.ID}); err != nil {
				log.Fatal().Err(err).Msg("role assignment failed")
			}
			break
		}
	}

	if *academySlug != "" {
		academy, err := database.GetAcademyBySlug(db, *academySlug)
		if err != nil {
			log.Fatal().Err(err).Str("slug", *academySlug).Msg("academy lookup failed")
		}
		if err := database.SetUserAcademies(db, user.ID, []string{academy.ID}); err != nil {
			log.Fatal().Err(err).Msg("academy grant failed")
		}
	}

	log.Info().Str("email", user.Email).Str("id", user.ID).Msg("staff account created")
}
