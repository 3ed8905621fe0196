package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nudah/clinic-portal/internal/session"
	"github.com/nudah/clinic-portal/pkg/config"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/types"
)

// The portal core has no UI of its own; this binary is a line-oriented
// stand-in for the presentation layer so the session can be driven by
// hand.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.LogLevel)

	sess := session.New(cfg, logger)
	defer sess.Close()

	fmt.Printf("%s portal (type 'help' for commands)\n", cfg.Clinic.Name)
	printState(sess)

	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "role":
			if len(args) == 1 {
				report(sess.Nav.SelectRole(types.UserRole(args[0])))
			}
		case "go":
			if len(args) == 1 {
				report(sess.Nav.Navigate(types.Screen(args[0])))
			}
		case "login":
			report(sess.Auth.SubmitLogin(sess.Nav.Role()))
		case "tab":
			if len(args) == 1 {
				report(sess.Nav.SelectTab(types.Tab(args[0])))
			}
		case "back":
			sess.Nav.Back()
		case "logout":
			sess.Logout()
		case "appointments":
			for _, apt := range sess.Store.ListAppointments() {
				fmt.Printf("  %s  %s %s  %-22s [%s]\n", apt.ID, apt.Date, apt.Time, apt.Type, apt.Status)
			}
		case "open":
			if len(args) == 1 {
				report(sess.Nav.OpenAppointmentDetail(args[0]))
			}
		case "cancel":
			if len(args) == 1 {
				report(sess.Store.CancelAppointment(args[0]))
			}
		case "request":
			if len(args) >= 3 {
				apt, err := sess.RequestAppointment(&types.AppointmentDraft{
					Type: strings.Join(args[2:], " "),
					Date: args[0],
					Time: args[1],
				})
				if err == nil {
					fmt.Printf("  requested %s\n", apt.ID)
				}
				report(err)
			}
		case "articles":
			for _, a := range sess.Store.ListArticles(types.ArticleCategory(strings.Join(args, ""))) {
				fmt.Printf("  %s  %-10s %2d min  %s\n", a.ID, a.Category, a.ReadTime, a.Title)
			}
		case "article":
			if len(args) == 1 {
				report(sess.Nav.OpenArticleDetail(args[0]))
			}
		case "photos":
			category := sess.Nav.PhotoCategory()
			if len(args) == 1 {
				category = types.PhotoCategory(args[0])
			}
			for _, p := range sess.Store.ListPhotos(category) {
				fmt.Printf("  %s  %-8s %s  %s\n", p.ID, p.Category, p.Date, p.Notes)
			}
		case "records":
			for _, r := range sess.Store.ListMedicalRecords() {
				fmt.Printf("  %s  %s  %s\n", r.ID, r.Date, r.Title)
			}
		case "profile":
			p := sess.Store.Profile()
			fmt.Printf("  %s <%s> %s\n", p.Name, p.Email, p.Phone)
		case "say":
			report(sess.Chat.Send(strings.Join(args, " ")))
		case "chat":
			for _, m := range sess.Store.ListMessages() {
				fmt.Printf("  [%s] %-7s %s\n", m.Timestamp.Format("15:04"), m.Sender, m.Text)
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("  unknown command %q\n", cmd)
		}

		printState(sess)
	}
}

func printState(sess *session.Session) {
	fmt.Printf("[screen=%s tab=%s role=%s auth=%s]\n",
		sess.Nav.Screen(), sess.Nav.ActiveTab(), roleLabel(sess.Nav.Role()), sess.Auth.State())
}

func roleLabel(r types.UserRole) string {
	if r == types.RoleNone {
		return "none"
	}
	return string(r)
}

func report(err error) {
	if err != nil {
		fmt.Printf("  refused: %v\n", err)
	}
}

func printHelp() {
	fmt.Print(`  role patient|staff        select a role
  login                     submit the simulated login
  go <screen>               navigate to a screen
  tab home|appointments|chat|records|profile
  back                      return to the fixed back target
  appointments / open <id> / cancel <id>
  request <date> <time> <type...>
  articles [category] / article <id>
  photos [category] / records / profile
  say <text...> / chat
  logout / quit
`)
}
